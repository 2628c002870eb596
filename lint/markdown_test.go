package lint

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/tmplindent/indent"
)

var guide = lines(
	"---",
	"title: Guide",
	"---",
	"# Usage",
	"",
	"```vue",
	"<template>",
	"  <div></div>",
	"</template>",
	"```",
	"",
	"```js",
	"  const x = 1",
	"```",
	"",
	"- item",
	"",
	"  ```html",
	"  <div>",
	"    <p></p>",
	"  </div>",
	"  ```",
)

func TestMarkdownBlocks(t *testing.T) {
	result, err := Source("guide.md", guide, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, []report{
		{line: 8, message: fourSpacesFoundTwo},
		{line: 20, message: fourSpacesFoundTwo},
	}, reports(result))

	assert.Equal(t, indent.Range{
		Start: indent.Location{Line: 8, Column: 0},
		End:   indent.Location{Line: 8, Column: 2},
	}, result.Findings[0].Range)
}

func TestMarkdownWithoutFrontMatter(t *testing.T) {
	src := lines(
		"Text",
		"",
		"```HTML",
		"<ul>",
		"  <li></li>",
		"</ul>",
		"```",
	)
	result, err := Source("README.md", src, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, []report{{line: 5, message: fourSpacesFoundTwo}}, reports(result))
}

func TestMarkdownFrontMatterSettings(t *testing.T) {
	tests := []struct {
		name     string
		matter   []string
		findings int
	}{
		{name: "indent override", matter: []string{"tmplindent:", "  indent: 2"}, findings: 0},
		{name: "attribute only keeps indent", matter: []string{"tmplindent:", "  attribute: 2"}, findings: 2},
		{name: "skip", matter: []string{"tmplindent:", "  skip: true"}, findings: 0},
		{name: "unrelated keys", matter: []string{"title: Guide", "tags: [a, b]"}, findings: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "---\n" + lines(tt.matter...) + guide[len("---\ntitle: Guide\n"):]
			result, err := Source("guide.md", src, DefaultOptions())
			assert.NoError(t, err)
			assert.Equal(t, tt.findings, len(result.Findings))
		})
	}
}

func TestMarkdownFrontMatterErrors(t *testing.T) {
	_, err := Source("guide.md", lines("---", "title: Guide", "# no end"), DefaultOptions())
	assert.IsError(t, err, ErrInvalidFrontMatter)

	_, err = Source("guide.md", lines("---", "title: [", "---"), DefaultOptions())
	assert.IsError(t, err, ErrInvalidFrontMatter)

	_, err = Source("guide.md", lines("---", "tmplindent:", "  indent: 0", "---"), DefaultOptions())
	assert.IsError(t, err, indent.ErrInvalidOption)
}

func TestParseFrontMatter(t *testing.T) {
	matter, body, offset, err := parseFrontMatter(lines("---", "tmplindent:", "  indent: tab", "  close_bracket: 1", "---", "body"))
	require.NoError(t, err)
	assert.Equal(t, "tab", matter.Tmplindent.Indent)
	assert.Equal(t, 1, *matter.Tmplindent.CloseBracket)
	assert.Equal(t, "\nbody\n", body)
	assert.Equal(t, 4, offset)

	opts, err := matter.Tmplindent.apply(indent.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, '\t', opts.IndentChar)
	assert.Equal(t, 1, opts.CloseBracket)
	assert.Equal(t, 1, opts.Attribute)
}

func TestParseFrontMatterCRLF(t *testing.T) {
	src := strings.ReplaceAll(lines("---", "tmplindent:", "  skip: true", "---", "body"), "\n", "\r\n")
	matter, body, offset, err := parseFrontMatter(src)
	require.NoError(t, err)
	assert.True(t, matter.Tmplindent.Skip)
	assert.Equal(t, "\r\nbody\r\n", body)
	assert.Equal(t, 3, offset)

	bad := strings.ReplaceAll(lines("---", "tmplindent:", "  skip: true", "---", "```vue", "<template>", "  <div></div>", "</template>", "```"), "\n", "\r\n")
	result, err := Source("guide.md", bad, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []report{}, reports(result))
}

func TestFencedBlocks(t *testing.T) {
	blocks := fencedBlocks([]byte(lines("```vue", "<template>", "</template>", "```", "```text", "x", "```")), 3)
	require.Len(t, blocks, 1)
	assert.Equal(t, "vue", blocks[0].language)
	assert.Equal(t, "<template>\n</template>\n", blocks[0].source)
	assert.Equal(t, []indent.Location{{Line: 5, Column: 0}, {Line: 6, Column: 0}}, blocks[0].lines)
}
