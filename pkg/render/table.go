package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jupierce/xccov-pretty/pkg/format"
	"github.com/jupierce/xccov-pretty/pkg/report"
	"github.com/jupierce/xccov-pretty/pkg/tree"
)

const (
	// indentWidth is the number of spaces per indentation level
	indentWidth = 4

	// columnGap separates the name column from the summary column
	columnGap = "    "
)

// cellWidth measures names independently of the user's locale. East Asian
// ambiguous characters such as "α" or "°" always count as one cell.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Row is one line of the coverage table
type Row struct {
	Name    string
	Summary string // empty for directories
	Level   int
}

// width returns the number of terminal cells the indented name occupies
func (r Row) width() int {
	return r.Level*indentWidth + cellWidth.StringWidth(r.Name)
}

func (r Row) format(nameColumnWidth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", r.Level*indentWidth))
	sb.WriteString(r.Name)
	if pad := nameColumnWidth - r.width(); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(columnGap)
	sb.WriteString(r.Summary)
	return sb.String()
}

// Table is the indented, column-aligned coverage tree for a project.
type Table struct {
	rows []Row
}

// NewTable builds the table rows for every included target of project.
func NewTable(project *report.ProjectReport, opts Options) *Table {
	f := opts.formatter()
	b := &rowBuilder{formatter: f, collator: f.Collator(false)}

	var rows []Row
	for i := range project.Targets {
		target := &project.Targets[i]
		if !opts.includes(target) {
			continue
		}
		rows = append(rows, b.rows(tree.Build(target), "", 0)...)
	}
	return &Table{rows: rows}
}

// Rows returns the table rows in display order
func (t *Table) Rows() []Row {
	return t.rows
}

// NameColumnWidth returns the width of the widest indented name
func (t *Table) NameColumnWidth() int {
	return nameColumnWidth(t.rows)
}

// String renders every row, newline-terminated.
func (t *Table) String() string {
	width := t.NameColumnWidth()

	var sb strings.Builder
	for _, row := range t.rows {
		sb.WriteString(row.format(width))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func nameColumnWidth(rows []Row) int {
	width := 0
	for _, row := range rows {
		width = max(width, row.width())
	}
	return width
}

type rowBuilder struct {
	formatter *format.Formatter
	collator  *format.Collator
}

// rows walks node depth-first. A directory with exactly one child gets no row of its
// own; its name becomes the prefix of the child's name at the same level.
func (b *rowBuilder) rows(node *tree.Node, prefix string, level int) []Row {
	name := prefix + node.Name
	if node.IsDirectory() {
		name += "/"
	}

	if node.IsDirectory() && node.Len() == 1 {
		return b.rows(node.Children()[0], name, level)
	}

	var summary string
	if node.Record != nil {
		summary = b.formatter.Summary(node.Record)
	}
	rows := []Row{{Name: name, Summary: summary, Level: level}}

	names := make([]string, 0, node.Len())
	for _, child := range node.Children() {
		names = append(names, child.Name)
	}
	b.collator.Sort(names)
	for _, childName := range names {
		rows = append(rows, b.rows(node.Child(childName), "", level+1)...)
	}
	return rows
}
