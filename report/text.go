package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shibukawa/tmplindent/lint"
)

// Text writes one `path:line:column: message (id)` line per finding.
// Columns are 1-based.
type Text struct {
	Color bool
}

func (r *Text) Render(w io.Writer, results []*lint.Result) error {
	path := color.New(color.Bold)
	position := color.New(color.FgCyan)
	id := color.New(color.Faint)
	warning := color.New(color.FgYellow)
	problem := color.New(color.FgRed, color.Bold)
	for _, c := range []*color.Color{path, position, id, warning, problem} {
		if r.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, result := range results {
		for _, parseErr := range result.Errors {
			if _, err := fmt.Fprintf(w, "%s: %s\n", path.Sprint(result.Path), warning.Sprint(parseErr.Error())); err != nil {
				return err
			}
		}
		for _, finding := range result.Findings {
			start := finding.Range.Start
			_, err := fmt.Fprintf(w, "%s:%s: %s %s\n",
				path.Sprint(result.Path),
				position.Sprintf("%d:%d", start.Line, start.Column+1),
				finding.Message,
				id.Sprintf("(%s)", finding.MessageID))
			if err != nil {
				return err
			}
		}
	}

	findings, files := Count(results)
	if findings == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", problem.Sprintf("%d %s in %d %s", findings, plural(findings, "problem"), files, plural(files, "file")))
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
