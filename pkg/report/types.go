// Package report defines the xccov coverage report model and decodes it from JSON.
package report

// Coverage holds the line coverage statistics shared by every report level
type Coverage struct {
	CoveredLines    int     `json:"coveredLines"`
	ExecutableLines int     `json:"executableLines"`
	LineCoverage    float64 `json:"lineCoverage"` // 0.0 - 1.0, as supplied by xccov
}

// Stats returns the coverage statistics. Every report level embeds Coverage and
// so satisfies Record.
func (c Coverage) Stats() Coverage {
	return c
}

// Record is anything that carries coverage statistics
type Record interface {
	Stats() Coverage
}

// ProjectReport is the top-level xccov report for a project
type ProjectReport struct {
	Coverage
	Targets []TargetReport `json:"targets"`
}

// TargetReport contains coverage statistics for a target within a project
type TargetReport struct {
	Coverage
	Name             string       `json:"name"`
	BuildProductPath string       `json:"buildProductPath"`
	Files            []FileReport `json:"files"`
}

// FileReport contains coverage statistics for a file within a target
type FileReport struct {
	Coverage
	Name      string           `json:"name"`
	Path      string           `json:"path"` // full path including the name
	Functions []FunctionReport `json:"functions"`
}

// FunctionReport contains coverage statistics for a function within a file
type FunctionReport struct {
	Coverage
	Name           string `json:"name"`
	LineNumber     int    `json:"lineNumber"` // line on which the body starts
	ExecutionCount int    `json:"executionCount"`
}
