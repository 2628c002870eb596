// Package report renders lint results for people and for tools.
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/lint"
)

// ErrUnknownFormat is returned by ByName for a format it does not know
var ErrUnknownFormat = errors.New("unknown report format")

// Renderer writes the results of a run
type Renderer interface {
	Render(w io.Writer, results []*lint.Result) error
}

var renderers = map[string]func(color bool) Renderer{
	"text":       func(color bool) Renderer { return &Text{Color: color} },
	"json":       func(bool) Renderer { return &JSON{} },
	"yaml":       func(bool) Renderer { return &YAML{} },
	"checkstyle": func(bool) Renderer { return &Checkstyle{} },
}

// ByName returns the renderer of a format. Color only affects text.
func ByName(name string, color bool) (Renderer, error) {
	factory, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, name, Formats())
	}
	return factory(color), nil
}

// Formats lists the format names in order
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of findings and the number of files that have any
func Count(results []*lint.Result) (findings, files int) {
	for _, result := range results {
		if len(result.Findings) > 0 {
			findings += len(result.Findings)
			files++
		}
	}
	return findings, files
}

// fileReport is the serialized form of a result
type fileReport struct {
	Path     string           `json:"path" yaml:"path"`
	Findings []indent.Finding `json:"findings" yaml:"findings"`
	Errors   []string         `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type summary struct {
	Files    []fileReport `json:"files" yaml:"files"`
	Problems int          `json:"problems" yaml:"problems"`
}

func summarize(results []*lint.Result) summary {
	s := summary{Files: make([]fileReport, 0, len(results))}
	for _, result := range results {
		report := fileReport{Path: result.Path, Findings: slices.Clone(result.Findings)}
		if report.Findings == nil {
			report.Findings = []indent.Finding{}
		}
		for _, err := range result.Errors {
			report.Errors = append(report.Errors, err.Error())
		}
		s.Files = append(s.Files, report)
	}
	s.Problems, _ = Count(results)
	return s
}
