package report

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/shibukawa/tmplindent/lint"
)

// JSON writes the results as one indented JSON document
type JSON struct{}

func (r *JSON) Render(w io.Writer, results []*lint.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summarize(results))
}

// YAML writes the results as a YAML document
type YAML struct{}

func (r *YAML) Render(w io.Writer, results []*lint.Result) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(summarize(results))
}

// Checkstyle writes the results in the checkstyle XML format understood by
// CI annotators. Every finding is a warning.
type Checkstyle struct{}

func (r *Checkstyle) Render(w io.Writer, results []*lint.Result) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", "4.3")

	for _, result := range results {
		file := root.CreateElement("file")
		file.CreateAttr("name", result.Path)
		for _, err := range result.Errors {
			e := file.CreateElement("error")
			e.CreateAttr("severity", "error")
			e.CreateAttr("message", err.Error())
			e.CreateAttr("source", "tmplindent.syntax")
		}
		for _, finding := range result.Findings {
			e := file.CreateElement("error")
			e.CreateAttr("line", strconv.Itoa(finding.Range.Start.Line))
			e.CreateAttr("column", strconv.Itoa(finding.Range.Start.Column+1))
			e.CreateAttr("severity", "warning")
			e.CreateAttr("message", finding.Message)
			e.CreateAttr("source", "tmplindent."+string(finding.MessageID))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
