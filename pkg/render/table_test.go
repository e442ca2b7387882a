package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupierce/xccov-pretty/pkg/report"
	"github.com/jupierce/xccov-pretty/pkg/tree"
)

func coreProject() *report.ProjectReport {
	return &report.ProjectReport{
		Coverage: coverage(15, 20, 0.75),
		Targets: []report.TargetReport{
			{
				Coverage: coverage(15, 20, 0.75),
				Name:     "Core",
				Files: []report.FileReport{
					fileReport("Core/B.swift", coverage(5, 10, 0.5)),
					fileReport("Core/A.swift", coverage(10, 10, 1)),
				},
			},
		},
	}
}

func TestTableCoreTarget(t *testing.T) {
	table := NewTable(coreProject(), Options{Formatter: english})

	assert.Equal(t, []Row{
		{Name: "Core", Summary: "75.00% (15 of 20)", Level: 0},
		{Name: "Core/", Summary: "", Level: 1},
		{Name: "A.swift", Summary: "100.00% (10 of 10)", Level: 2},
		{Name: "B.swift", Summary: "50.00% (5 of 10)", Level: 2},
	}, table.Rows())
	assert.Equal(t, 15, table.NameColumnWidth())

	want := "Core" + spaces(11) + columnGap + "75.00% (15 of 20)\n" +
		spaces(4) + "Core/" + spaces(6) + columnGap + "\n" +
		spaces(8) + "A.swift" + columnGap + "100.00% (10 of 10)\n" +
		spaces(8) + "B.swift" + columnGap + "50.00% (5 of 10)\n"
	assertText(t, want, table.String())
}

func TestTableFilesDirectlyUnderTarget(t *testing.T) {
	project := &report.ProjectReport{
		Targets: []report.TargetReport{{
			Coverage: coverage(15, 20, 0.75),
			Name:     "Core",
			Files: []report.FileReport{
				fileReport("B.swift", coverage(5, 10, 0.5)),
				fileReport("A.swift", coverage(10, 10, 1)),
			},
		}},
	}

	assert.Equal(t, []Row{
		{Name: "Core", Summary: "75.00% (15 of 20)", Level: 0},
		{Name: "A.swift", Summary: "100.00% (10 of 10)", Level: 1},
		{Name: "B.swift", Summary: "50.00% (5 of 10)", Level: 1},
	}, NewTable(project, Options{Formatter: english}).Rows())
}

func TestRowsCollapseSingleChildChain(t *testing.T) {
	dir := tree.New("Sources", nil)
	dir.Add("Pkg/Mod/File.swift", coverage(3, 4, 0.75))

	b := &rowBuilder{formatter: english, collator: english.Collator(false)}
	assert.Equal(t, []Row{
		{Name: "Sources/Pkg/Mod/File.swift", Summary: "75.00% (3 of 4)", Level: 0},
	}, b.rows(dir, "", 0))
}

func TestTableCollapsesChainBelowTarget(t *testing.T) {
	project := &report.ProjectReport{
		Targets: []report.TargetReport{{
			Coverage: coverage(3, 4, 0.75),
			Name:     "Pkg",
			Files:    []report.FileReport{fileReport("Sources/Pkg/Mod/File.swift", coverage(3, 4, 0.75))},
		}},
	}

	assert.Equal(t, []Row{
		{Name: "Pkg", Summary: "75.00% (3 of 4)", Level: 0},
		{Name: "Sources/Pkg/Mod/File.swift", Summary: "75.00% (3 of 4)", Level: 1},
	}, NewTable(project, Options{Formatter: english}).Rows())
}

func TestTableCollapsesAbsolutePathPrefix(t *testing.T) {
	project := &report.ProjectReport{
		Targets: []report.TargetReport{{
			Coverage: coverage(15, 20, 0.75),
			Name:     "Core",
			Files: []report.FileReport{
				fileReport("/Users/dev/Project/Sources/Core/A.swift", coverage(10, 10, 1)),
				fileReport("/Users/dev/Project/Sources/Core/Models/Item.swift", coverage(5, 10, 0.5)),
				fileReport("/Users/dev/Project/Sources/Core/Models/List.swift", coverage(0, 0, 0)),
			},
		}},
	}

	assert.Equal(t, []Row{
		{Name: "Core", Summary: "75.00% (15 of 20)", Level: 0},
		{Name: "/Users/dev/Project/Sources/Core/", Summary: "", Level: 1},
		{Name: "A.swift", Summary: "100.00% (10 of 10)", Level: 2},
		{Name: "Models/", Summary: "", Level: 2},
		{Name: "Item.swift", Summary: "50.00% (5 of 10)", Level: 3},
		{Name: "List.swift", Summary: "0.00% (0 of 0)", Level: 3},
	}, NewTable(project, Options{Formatter: english}).Rows())
}

func TestRowsMultiChildDirectoryKeepsRow(t *testing.T) {
	dir := tree.New("Sources", nil)
	dir.Add("a.swift", coverage(1, 1, 1))
	dir.Add("b.swift", coverage(0, 1, 0))

	b := &rowBuilder{formatter: english, collator: english.Collator(false)}
	rows := b.rows(dir, "", 0)
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Name: "Sources/", Level: 0}, rows[0])
	assert.Equal(t, 1, rows[1].Level)
	assert.Equal(t, 1, rows[2].Level)
}

func TestRowsCollapseStopsAtFileWithChildren(t *testing.T) {
	// A node that has a record is never collapsed, even with a single child
	dir := tree.New("a", nil)
	dir.Add("b", coverage(1, 2, 0.5))
	dir.Add("b/c.swift", coverage(1, 1, 1))

	b := &rowBuilder{formatter: english, collator: english.Collator(false)}
	assert.Equal(t, []Row{
		{Name: "a/b", Summary: "50.00% (1 of 2)", Level: 0},
		{Name: "c.swift", Summary: "100.00% (1 of 1)", Level: 1},
	}, b.rows(dir, "", 0))
}

func TestTableSortsSiblingsRegardlessOfInsertionOrder(t *testing.T) {
	paths := []string{"src/zeta.swift", "src/Alpha.swift", "src/beta.swift", "src/Beta.swift", "src/gamma/x.swift", "src/gamma/y.swift"}

	var want []string
	for _, order := range [][]int{{0, 1, 2, 3, 4, 5}, {5, 4, 3, 2, 1, 0}, {2, 5, 0, 3, 1, 4}} {
		var files []report.FileReport
		for _, i := range order {
			files = append(files, fileReport(paths[i], coverage(1, 1, 1)))
		}
		project := &report.ProjectReport{Targets: []report.TargetReport{{Name: "T", Files: files}}}

		var names []string
		for _, row := range NewTable(project, Options{Formatter: english}).Rows() {
			names = append(names, row.Name)
		}
		if want == nil {
			want = names
			continue
		}
		assert.Equal(t, want, names)
	}

	assert.Equal(t, []string{"T", "src/", "Alpha.swift", "beta.swift", "Beta.swift", "gamma/", "x.swift", "y.swift", "zeta.swift"}, want)
}

func TestTableSkipsEmptyTargets(t *testing.T) {
	project := coreProject()
	project.Targets = append(project.Targets, report.TargetReport{Name: "CoreTests.xctest"})

	table := NewTable(project, Options{Formatter: english})
	for _, row := range table.Rows() {
		assert.NotEqual(t, "CoreTests.xctest", row.Name)
	}
	assert.Len(t, table.Rows(), 4)
}

func TestTableAllowList(t *testing.T) {
	project := coreProject()
	project.Targets = append(project.Targets, report.TargetReport{
		Coverage: coverage(1, 2, 0.5),
		Name:     "Extra",
		Files:    []report.FileReport{fileReport("Extra.swift", coverage(1, 2, 0.5))},
	})

	all := NewTable(project, Options{Formatter: english}).Rows()
	assert.Len(t, all, 6)

	core := NewTable(project, Options{Formatter: english, Targets: []string{"Core"}}).Rows()
	require.Len(t, core, 4)
	assert.Equal(t, "Core", core[0].Name)

	none := NewTable(project, Options{Formatter: english, Targets: []string{}}).Rows()
	assert.Empty(t, none)
}

func TestEmptyProject(t *testing.T) {
	table := NewTable(&report.ProjectReport{}, Options{Formatter: english})
	assert.Empty(t, table.Rows())
	assert.Equal(t, 0, table.NameColumnWidth())
	assert.Equal(t, "", table.String())
}

func TestNameColumnWidth(t *testing.T) {
	rows := []Row{
		{Name: "a", Summary: "x", Level: 0},
		{Name: "bb", Summary: "y", Level: 1},
	}
	assert.Equal(t, 6, nameColumnWidth(rows))
	assert.Equal(t, "a"+spaces(5)+columnGap+"x", rows[0].format(6))
	assert.Equal(t, spaces(4)+"bb"+columnGap+"y", rows[1].format(6))
}

func TestNameColumnWidthUsesDisplayWidth(t *testing.T) {
	rows := []Row{{Name: "日本.swift", Level: 0}, {Name: "ab", Level: 0}}
	assert.Equal(t, 10, nameColumnWidth(rows))
	assert.Equal(t, "ab"+spaces(8)+columnGap, rows[1].format(10))
}

func TestNameColumnWidthIgnoresEastAsianLocale(t *testing.T) {
	project := &report.ProjectReport{
		Targets: []report.TargetReport{{
			Coverage: coverage(2, 3, 0.6667),
			Name:     "App",
			Files: []report.FileReport{
				fileReport("View+Extensions.swift", coverage(1, 2, 0.5)),
				fileReport("α°.swift", coverage(1, 1, 1)),
			},
		}},
	}
	render := func() string {
		return NewTable(project, Options{Formatter: english}).String()
	}

	want := render()
	assert.Contains(t, want, spaces(4)+"α°.swift"+spaces(13)+columnGap+"100.00% (1 of 1)\n")

	eastAsian := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = eastAsian })

	assertText(t, want, render())
}

func TestOverall(t *testing.T) {
	project := &report.ProjectReport{Coverage: coverage(85023, 102004, 0.8335)}
	assert.Equal(t, "Overall coverage: 83.35% (85,023 of 102,004).", Overall(project, english))
}

func TestOverallDefaultsToSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	project := &report.ProjectReport{Coverage: coverage(85023, 102004, 0.8335)}
	assert.Equal(t, Overall(project, english), Overall(project, nil))
}
