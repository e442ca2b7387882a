package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/jupierce/xccov-pretty/pkg/format"
	"github.com/jupierce/xccov-pretty/pkg/report"
)

// Comment is a markdown pull-request comment with one collapsible table per target.
// Unlike Table it lists files flat, by file name, without directories.
type Comment struct {
	project   *report.ProjectReport
	targets   []commentTarget
	formatter *format.Formatter
}

type commentTarget struct {
	Report *report.TargetReport
	Rows   []commentRow
}

type commentRow struct {
	Name string
	File report.FileReport
}

// NewComment collects the included targets of project and sorts their files by name.
func NewComment(project *report.ProjectReport, opts Options) *Comment {
	f := opts.formatter()
	collator := f.Collator(true)

	var targets []commentTarget
	for i := range project.Targets {
		target := &project.Targets[i]
		if !opts.includes(target) {
			continue
		}

		rows := make([]commentRow, 0, len(target.Files))
		for _, file := range target.Files {
			rows = append(rows, commentRow{Name: displayName(file.Path), File: file})
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return collator.Compare(rows[i].Name, rows[j].Name) < 0
		})

		targets = append(targets, commentTarget{Report: target, Rows: rows})
	}

	return &Comment{project: project, targets: targets, formatter: f}
}

// displayName returns the last path component, ignoring trailing slashes
func displayName(p string) string {
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// escapeName escapes the characters that are significant in HTML text. Unlike
// html/template's default escaping it leaves "+" alone, so names such as
// "View+Extensions.swift" stay readable in the raw comment.
func escapeName(name string) template.HTML {
	return template.HTML(html.EscapeString(name))
}

// Render writes the comment to w.
func (c *Comment) Render(w io.Writer) error {
	funcMap := template.FuncMap{
		"summary": c.formatter.Summary,
		"percent": func(r report.Record) string {
			return c.formatter.Percent(r.Stats().LineCoverage)
		},
		"count": c.formatter.Count,
		"name":  escapeName,
	}

	tmpl, err := template.New("comment").Funcs(funcMap).Parse(commentTemplate)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	data := struct {
		Project *report.ProjectReport
		Targets []commentTarget
	}{
		Project: c.project,
		Targets: c.targets,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	out := strings.TrimRight(buf.String(), "\n") + "\n"
	_, err = io.WriteString(w, out)
	return err
}

// String returns the rendered comment.
func (c *Comment) String() string {
	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		// commentTemplate is a constant, so this only fails if it is broken
		panic(fmt.Sprintf("render comment: %v", err))
	}
	return sb.String()
}

const commentTemplate = `## Code Coverage Report

**Overall Coverage**: {{summary .Project}}

{{range $i, $t := .Targets}}{{if $i}}
{{end}}<details>
<summary><strong>{{name $t.Report.Name}}</strong>: {{summary $t.Report}}</summary>
<table>
    <thead>
        <tr>
            <th>File</th>
            <th>Coverage</th>
            <th>Covered Lines</th>
            <th>Executable Lines</th>
        </tr>
    </thead>
    <tbody>
{{range $t.Rows}}    <tr>
        <td>{{name .Name}}</td>
        <td>{{percent .File}}</td>
        <td>{{count .File.CoveredLines}}</td>
        <td>{{count .File.ExecutableLines}}</td>
    </tr>
{{end}}    </tbody>
</table>
</details>{{end}}
`
