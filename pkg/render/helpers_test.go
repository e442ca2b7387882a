package render

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/language"

	"github.com/jupierce/xccov-pretty/pkg/format"
	"github.com/jupierce/xccov-pretty/pkg/report"
)

var english = format.New(language.English)

func coverage(covered, executable int, lineCoverage float64) report.Coverage {
	return report.Coverage{CoveredLines: covered, ExecutableLines: executable, LineCoverage: lineCoverage}
}

func fileReport(path string, cov report.Coverage) report.FileReport {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return report.FileReport{Coverage: cov, Name: name, Path: path}
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

// assertText fails with a unified diff when got differs from want.
func assertText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("diff rendered text: %v", err)
	}
	t.Fatalf("rendered text mismatch:\n%s", diff)
}
