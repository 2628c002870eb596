package indent

import (
	"strings"
)

// MessageID identifies the kind of a finding
type MessageID string

const (
	// MessageUnexpectedChar reports an indentation character other than the
	// configured one
	MessageUnexpectedChar MessageID = "unexpectedChar"
	// MessageUnexpectedIndentation reports an indentation of the wrong width
	MessageUnexpectedIndentation MessageID = "unexpectedIndentation"
)

var messageTemplates = map[MessageID]string{
	MessageUnexpectedChar:        "Expected {{expected}} character, but found {{actual}} character.",
	MessageUnexpectedIndentation: "Expected indentation of {{expectedIndent}} {{unit}}{{expectedIndentPlural}} but found {{actualIndent}} {{unit}}{{actualIndentPlural}}.",
}

// Location is a position in the source. Line is 1-based and Column counts
// the runes before the position on its line.
type Location struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Range is the span a finding points at
type Range struct {
	Start Location `json:"start" yaml:"start"`
	End   Location `json:"end" yaml:"end"`
}

// Finding is one indentation problem
type Finding struct {
	Range     Range             `json:"range" yaml:"range"`
	MessageID MessageID         `json:"messageId" yaml:"message_id"`
	Message   string            `json:"message" yaml:"message"`
	Data      map[string]string `json:"data" yaml:"data"`
}

func newFinding(id MessageID, line, startColumn, endColumn int, data map[string]string) Finding {
	return Finding{
		Range: Range{
			Start: Location{Line: line, Column: startColumn},
			End:   Location{Line: line, Column: endColumn},
		},
		MessageID: id,
		Message:   formatMessage(messageTemplates[id], data),
		Data:      data,
	}
}

// formatMessage fills the {{name}} placeholders of a message template
func formatMessage(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
