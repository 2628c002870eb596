package lint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/parser"
)

type report struct {
	line    int
	message string
}

func reports(result *Result) []report {
	results := []report{}
	for _, f := range result.Findings {
		results = append(results, report{line: f.Range.Start.Line, message: f.Message})
	}
	return results
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

const fourSpacesFoundTwo = "Expected indentation of 4 spaces but found 2 spaces."

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindComponent, KindOf("App.vue"))
	assert.Equal(t, KindTemplate, KindOf("index.HTML"))
	assert.Equal(t, KindTemplate, KindOf("page.htm"))
	assert.Equal(t, KindMarkdown, KindOf("README.md"))
	assert.Equal(t, KindUnsupported, KindOf("main.go"))
}

func TestSourceComponent(t *testing.T) {
	src := lines(
		"<template>",
		"  <div></div>",
		"</template>",
		"<script>",
		"      export default {}",
		"</script>",
		"<style>",
		"   a { color: red }",
		"</style>",
	)
	result, err := Source("App.vue", src, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, "App.vue", result.Path)
	assert.Equal(t, []report{{line: 2, message: fourSpacesFoundTwo}}, reports(result))
}

func TestSourceComponentWithoutTemplate(t *testing.T) {
	result, err := Source("Empty.vue", lines("<div>", "  <p></p>", "</div>"), DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Findings))
}

func TestSourceTemplate(t *testing.T) {
	src := lines(
		"<div>",
		"  <p></p>",
		"</div>",
		"<section>",
		"    <p></p>",
		"</section>",
		"<script>",
		"  go()",
		"</script>",
	)
	result, err := Source("index.html", src, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, []report{{line: 2, message: fourSpacesFoundTwo}}, reports(result))
}

func TestSourceKeepsExpressionErrors(t *testing.T) {
	src := lines(
		"<template>",
		`    <div :a="foo("></div>`,
		"</template>",
	)
	result, err := Source("Broken.vue", src, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Findings))
	assert.Equal(t, 1, len(result.Errors))
}

func TestSourceUnsupported(t *testing.T) {
	_, err := Source("notes.txt", "<div></div>", DefaultOptions())
	assert.IsError(t, err, ErrUnsupportedFile)

	opts := DefaultOptions()
	opts.Markdown = false
	_, err = Source("README.md", "# title", opts)
	assert.IsError(t, err, ErrUnsupportedFile)
}

func TestSourceIndentOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent.IndentSize = 2
	result, err := Source("App.vue", lines("<template>", "  <div></div>", "</template>"), opts)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(result.Findings))
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.vue":  lines("<template>", "  <div></div>", "</template>"),
		"b.html": lines("<div>", "    <p></p>", "</div>"),
		"c.md":   lines("# c", "", "```html", "<ul>", "  <li></li>", "</ul>", "```"),
	})
	paths := []string{
		filepath.Join(root, "c.md"),
		filepath.Join(root, "b.html"),
		filepath.Join(root, "a.vue"),
	}

	opts := DefaultOptions()
	opts.Concurrency = 2
	results, err := Files(context.Background(), paths, opts)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(results))

	assert.Equal(t, filepath.Join(root, "a.vue"), results[0].Path)
	assert.Equal(t, []report{{line: 2, message: fourSpacesFoundTwo}}, reports(results[0]))
	assert.Equal(t, filepath.Join(root, "b.html"), results[1].Path)
	assert.Equal(t, 0, len(results[1].Findings))
	assert.Equal(t, filepath.Join(root, "c.md"), results[2].Path)
	assert.Equal(t, []report{{line: 5, message: fourSpacesFoundTwo}}, reports(results[2]))
}

func TestFilesFailure(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.vue": "<template></template>"})

	_, err := Files(context.Background(), []string{filepath.Join(root, "a.vue"), filepath.Join(root, "missing.vue")}, DefaultOptions())
	assert.IsError(t, err, ErrReadFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Files(ctx, []string{filepath.Join(root, "a.vue")}, DefaultOptions())
	assert.IsError(t, err, context.Canceled)
}

func TestResultFindingsAreEngineFindings(t *testing.T) {
	result, err := Source("App.vue", lines("<template>", "\t<div></div>", "</template>"), DefaultOptions())
	assert.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, indent.MessageUnexpectedChar, result.Findings[0].MessageID)
	assert.Equal(t, indent.Range{
		Start: indent.Location{Line: 2, Column: 0},
		End:   indent.Location{Line: 2, Column: 1},
	}, result.Findings[0].Range)
}

func TestRoots(t *testing.T) {
	doc := parser.Parse(lines(
		"<template>",
		"    <div></div>",
		"</template>",
		"<script>",
		"export default {}",
		"</script>",
		"<style>",
		"div { color: red }",
		"</style>",
	))

	names := func(kind Kind) []string {
		result := []string{}
		for _, root := range Roots(kind, doc) {
			result = append(result, root.Name)
		}
		return result
	}

	assert.Equal(t, []string{"template"}, names(KindComponent))
	assert.Equal(t, []string{"template"}, names(KindTemplate))
	assert.Equal(t, []string{}, names(KindMarkdown))
}
