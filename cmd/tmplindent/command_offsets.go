package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/lint"
	"github.com/shibukawa/tmplindent/parser"
)

// OffsetsCmd represents the offsets command
type OffsetsCmd struct {
	File string `arg:"" help:"Template file (.vue or .html)" type:"existingfile"`
}

// offsetDump is the YAML document written by the offsets command
type offsetDump struct {
	File    string          `yaml:"file"`
	Options dumpOptions     `yaml:"options"`
	Tokens  []indent.Offset `yaml:"tokens"`
}

type dumpOptions struct {
	Unit         string `yaml:"unit"`
	Size         int    `yaml:"size"`
	Attribute    int    `yaml:"attribute"`
	CloseBracket int    `yaml:"close_bracket"`
}

// Run executes the offsets command
func (cmd *OffsetsCmd) Run(ctx *Context) error {
	kind := lint.KindOf(cmd.File)
	if kind != lint.KindComponent && kind != lint.KindTemplate {
		return fmt.Errorf("%w: %s", lint.ErrUnsupportedFile, cmd.File)
	}

	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	opts, err := config.IndentOptions()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}

	doc := parser.Parse(string(content))
	engine := indent.NewEngine(opts, loggerFromContext(ctx.Ctx))

	offsets, err := engine.Offsets(doc, lint.Roots(kind, doc))
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(ctx.Stdout)
	defer encoder.Close()
	encoder.SetIndent(2)

	return encoder.Encode(offsetDump{
		File: cmd.File,
		Options: dumpOptions{
			Unit:         opts.Unit(),
			Size:         opts.IndentSize,
			Attribute:    opts.Attribute,
			CloseBracket: opts.CloseBracket,
		},
		Tokens: offsets,
	})
}
