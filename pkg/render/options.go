// Package render turns a project coverage report into the plain-text tree table
// and the pull-request comment.
package render

import (
	"slices"

	"github.com/jupierce/xccov-pretty/pkg/format"
	"github.com/jupierce/xccov-pretty/pkg/report"
)

// Options controls which targets are rendered and how numbers look.
type Options struct {
	// Targets restricts output to the named targets. A nil slice includes every
	// target; an empty, non-nil slice includes none.
	Targets []string

	// Formatter renders summaries and supplies collation. Nil means the system locale.
	Formatter *format.Formatter
}

func (o Options) formatter() *format.Formatter {
	if o.Formatter == nil {
		return format.Default()
	}
	return o.Formatter
}

// includes reports whether target should be rendered. Targets without files are
// never rendered.
func (o Options) includes(target *report.TargetReport) bool {
	if len(target.Files) == 0 {
		return false
	}
	return o.Targets == nil || slices.Contains(o.Targets, target.Name)
}

// Overall returns the closing summary line printed under the table.
func Overall(project *report.ProjectReport, f *format.Formatter) string {
	if f == nil {
		return "Overall coverage: " + format.Summary(project) + "."
	}
	return "Overall coverage: " + f.Summary(project) + "."
}
