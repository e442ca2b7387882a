package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrNoInput is returned when no bytes could be read from the input stream.
var ErrNoInput = errors.New("could not read data from stdin")

// DecodeError reports input that was read but does not match the report schema.
type DecodeError struct {
	// Issues lists every schema violation, sorted. Empty when Err is set.
	Issues []string
	Err    error
}

func (e *DecodeError) Error() string {
	if len(e.Issues) > 0 {
		return "failed to parse JSON from stdin:\n  - " + strings.Join(e.Issues, "\n  - ")
	}
	return fmt.Sprintf("failed to parse JSON from stdin: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(projectSchema))
})

// Read consumes r to EOF. It returns ErrNoInput if nothing could be read.
func Read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInput, err)
	}
	if len(data) == 0 {
		return nil, ErrNoInput
	}
	return data, nil
}

// Decode validates data against the report schema and decodes it.
// Any failure is returned as a *DecodeError.
func Decode(data []byte) (*ProjectReport, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("compile report schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The document is not JSON at all
		return nil, &DecodeError{Err: err}
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			issues = append(issues, re.String())
		}
		sort.Strings(issues)
		return nil, &DecodeError{Issues: issues}
	}

	var project ProjectReport
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &project, nil
}
