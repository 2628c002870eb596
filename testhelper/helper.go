// Package testhelper holds helpers shared by the package tests.
package testhelper

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

var leadingSpaces = regexp.MustCompile(`^[ \t]*`)

// TrimIndent removes the first line of a raw string literal and the
// indentation of its second line from every line, so that template
// fixtures can be indented with the test code. Tabs after the removed
// prefix are kept.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}
	indent := leadingSpaces.FindString(lines[1])
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines[1:], "\n")
}

// Numbered prefixes every line of src with its 1-based line number and
// shows tabs as "→", for failure messages of table driven tests.
func Numbered(src string) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, line := range strings.Split(src, "\n") {
		fmt.Fprintf(&b, "%3d| %s\n", i+1, strings.ReplaceAll(line, "\t", "→"))
	}
	return b.String()
}
