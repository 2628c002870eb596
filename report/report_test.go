package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/lint"
)

func sampleResults(t *testing.T) []*lint.Result {
	t.Helper()
	broken, err := lint.Source("Broken.vue", "<template>\n  <div></div>\n</template>\n", lint.DefaultOptions())
	require.NoError(t, err)
	clean, err := lint.Source("Clean.vue", "<template>\n    <div></div>\n</template>\n", lint.DefaultOptions())
	require.NoError(t, err)
	return []*lint.Result{broken, clean}
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"checkstyle", "json", "text", "yaml"}, Formats())

	r, err := ByName("text", true)
	assert.NoError(t, err)
	assert.Equal(t, &Text{Color: true}, r.(*Text))

	_, err = ByName("html", false)
	assert.IsError(t, err, ErrUnknownFormat)
}

func TestCount(t *testing.T) {
	findings, files := Count(sampleResults(t))
	assert.Equal(t, 1, findings)
	assert.Equal(t, 1, files)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	err := (&Text{}).Render(&buf, sampleResults(t))
	assert.NoError(t, err)
	assert.Equal(t,
		"Broken.vue:2:1: Expected indentation of 4 spaces but found 2 spaces. (unexpectedIndentation)\n"+
			"\n1 problem in 1 file\n",
		buf.String())
}

func TestTextWithoutFindings(t *testing.T) {
	var buf bytes.Buffer
	err := (&Text{}).Render(&buf, sampleResults(t)[1:])
	assert.NoError(t, err)
	assert.Equal(t, "", buf.String())
}

func TestTextParseErrors(t *testing.T) {
	results := []*lint.Result{{Path: "a.vue", Errors: []error{errors.New("unexpected token")}}}
	var buf bytes.Buffer
	assert.NoError(t, (&Text{}).Render(&buf, results))
	assert.Equal(t, "a.vue: unexpected token\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&JSON{}).Render(&buf, sampleResults(t)))

	var decoded summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Problems)
	assert.Equal(t, 2, len(decoded.Files))
	assert.Equal(t, "Clean.vue", decoded.Files[1].Path)
	assert.Equal(t, []indent.Finding{}, decoded.Files[1].Findings)

	finding := decoded.Files[0].Findings[0]
	assert.Equal(t, indent.MessageUnexpectedIndentation, finding.MessageID)
	assert.Equal(t, "4", finding.Data["expectedIndent"])
	assert.Equal(t, "2", finding.Data["actualIndent"])
	assert.Equal(t, indent.Location{Line: 2, Column: 2}, finding.Range.End)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&YAML{}).Render(&buf, sampleResults(t)))

	var decoded summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Problems)
	assert.Equal(t, "Broken.vue", decoded.Files[0].Path)
	assert.Equal(t, 2, decoded.Files[0].Findings[0].Range.Start.Line)
	assert.Contains(t, buf.String(), "message_id: unexpectedIndentation")
}

func TestCheckstyle(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&Checkstyle{}).Render(&buf, sampleResults(t)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.SelectElement("checkstyle")
	require.NotNil(t, root)

	files := root.SelectElements("file")
	require.Len(t, files, 2)
	assert.Equal(t, "Broken.vue", files[0].SelectAttrValue("name", ""))

	e := files[0].SelectElement("error")
	require.NotNil(t, e)
	assert.Equal(t, "2", e.SelectAttrValue("line", ""))
	assert.Equal(t, "1", e.SelectAttrValue("column", ""))
	assert.Equal(t, "warning", e.SelectAttrValue("severity", ""))
	assert.Equal(t, "tmplindent.unexpectedIndentation", e.SelectAttrValue("source", ""))
	assert.Equal(t, 0, len(files[1].SelectElements("error")))
}
