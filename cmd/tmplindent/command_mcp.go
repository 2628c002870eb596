package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/lint"
	"github.com/shibukawa/tmplindent/parser"
	"github.com/shibukawa/tmplindent/report"
)

// MCPCmd represents the mcp command
type MCPCmd struct{}

// Run serves the tools until stdin closes
func (cmd *MCPCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the protocol
	logger := newLogger(ctx.Stderr, loggerFromContext(ctx.Ctx).GetLevel())

	opts, err := config.LintOptions(logger)
	if err != nil {
		return err
	}

	server := newMCPServer(&toolHandler{opts: opts, logger: logger})
	logger.Info("serving MCP over stdio", "version", version)

	return server.Run(ctx.Ctx, &mcp.StdioTransport{})
}

// CheckIndentationArgs are the arguments of the check_indentation tool
type CheckIndentationArgs struct {
	Path   string `json:"path,omitempty" jsonschema:"Template file to check (.vue, .html or .md)"`
	Source string `json:"source,omitempty" jsonschema:"Template text to check instead of a file"`
	Name   string `json:"name,omitempty" jsonschema:"File name that tells how source is read, such as App.vue"`
	Format string `json:"format,omitempty" jsonschema:"Report format: text (default), json, yaml or checkstyle"`
}

// ShowOffsetsArgs are the arguments of the show_offsets tool
type ShowOffsetsArgs struct {
	Path   string `json:"path,omitempty" jsonschema:"Template file (.vue or .html)"`
	Source string `json:"source,omitempty" jsonschema:"Template text instead of a file"`
	Name   string `json:"name,omitempty" jsonschema:"File name that tells how source is read, such as App.vue"`
}

type toolHandler struct {
	opts   lint.Options
	logger *log.Logger
}

func newMCPServer(h *toolHandler) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "tmplindent", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_indentation",
		Description: "Reports the lines of a Vue or HTML template whose indentation differs from the expected one",
	}, h.checkIndentation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_offsets",
		Description: "Lists every token of a template with the token its indentation is relative to",
	}, h.showOffsets)

	return server
}

// source resolves the text and the name of a tool input
func source(path, src, name string) (string, string, error) {
	if src != "" {
		if name == "" {
			name = "input.vue"
		}

		return src, name, nil
	}

	if path == "" {
		return "", "", ErrMissingSource
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(content), path, nil
}

func (h *toolHandler) checkIndentation(ctx context.Context, req *mcp.CallToolRequest, args CheckIndentationArgs) (*mcp.CallToolResult, any, error) {
	text, name, err := source(args.Path, args.Source, args.Name)
	if err != nil {
		return errorResult(err), nil, nil
	}

	format := args.Format
	if format == "" {
		format = "text"
	}

	renderer, err := report.ByName(format, false)
	if err != nil {
		return errorResult(err), nil, nil
	}

	result, err := lint.Source(name, text, h.opts)
	if err != nil {
		return errorResult(err), nil, nil
	}

	h.logger.Debug("checked", "name", name, "findings", len(result.Findings))

	var buf bytes.Buffer

	err = renderer.Render(&buf, []*lint.Result{result})
	if err != nil {
		return errorResult(err), nil, nil
	}

	if buf.Len() == 0 {
		return textResult("No indentation problems found."), nil, nil
	}

	return textResult(buf.String()), nil, nil
}

func (h *toolHandler) showOffsets(ctx context.Context, req *mcp.CallToolRequest, args ShowOffsetsArgs) (*mcp.CallToolResult, any, error) {
	text, name, err := source(args.Path, args.Source, args.Name)
	if err != nil {
		return errorResult(err), nil, nil
	}

	kind := lint.KindOf(name)
	if kind != lint.KindComponent && kind != lint.KindTemplate {
		return errorResult(fmt.Errorf("%w: %s", lint.ErrUnsupportedFile, name)), nil, nil
	}

	doc := parser.Parse(text)

	offsets, err := indent.NewEngine(h.opts.Indent, h.logger).Offsets(doc, lint.Roots(kind, doc))
	if err != nil {
		return errorResult(err), nil, nil
	}

	out, err := yaml.Marshal(offsets)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return textResult(string(out)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}
