// Package format renders coverage statistics as text using locale conventions.
//
// A summary looks like "83.35% (85,023 of 102,004)": line coverage as a percentage
// with two fraction digits, followed by the covered and executable line counts with
// digit grouping.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jupierce/xccov-pretty/pkg/report"
)

// Formatter renders coverage records for a single locale
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates a Formatter for the given locale
func New(tag language.Tag) *Formatter {
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Default creates a Formatter for the system locale
func Default() *Formatter {
	return New(SystemTag())
}

// Tag returns the formatter's locale
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Percent renders a 0.0 - 1.0 fraction as a percentage with exactly two fraction digits.
func (f *Formatter) Percent(fraction float64) string {
	return f.printer.Sprintf("%.2f%%", fraction*100)
}

// Count renders an integer with digit grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Summary renders r as "P% (C of E)".
func (f *Formatter) Summary(r report.Record) string {
	stats := r.Stats()
	return f.Percent(stats.LineCoverage) + " (" + f.Count(stats.CoveredLines) + " of " + f.Count(stats.ExecutableLines) + ")"
}

// Summary renders r with the system locale.
func Summary(r report.Record) string {
	return Default().Summary(r)
}
