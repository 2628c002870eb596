package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/shibukawa/tmplindent"
	"github.com/shibukawa/tmplindent/lint"
	"github.com/shibukawa/tmplindent/report"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Paths        []string `arg:"" optional:"" help:"Files or directories to check (default: current directory)" type:"path"`
	Format       string   `short:"f" help:"Output format: text, json, yaml or checkstyle"`
	Indent       string   `help:"Indentation: tab or the number of spaces per level"`
	Attribute    *int     `help:"Levels of the first attribute relative to its tag"`
	CloseBracket *int     `help:"Levels of a closing bracket relative to its tag"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	cmd.override(config)

	logger := loggerFromContext(ctx.Ctx)

	opts, err := config.LintOptions(logger)
	if err != nil {
		return err
	}

	renderer, err := report.ByName(config.Format, ctx.Color)
	if err != nil {
		return err
	}

	files, err := cmd.collect(config)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return ErrNoFiles
	}

	if ctx.Verbose {
		ctx.status(color.FgBlue, "Checking %d files", len(files))
	}

	results, err := lint.Files(ctx.Ctx, files, opts)
	if err != nil {
		return err
	}

	err = renderer.Render(ctx.Stdout, results)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	findings, _ := report.Count(results)
	if findings > 0 {
		return ErrFindingsReported
	}

	if config.Format == "text" {
		ctx.status(color.FgGreen, "No indentation problems in %d files", len(files))
	}

	return nil
}

// override applies the command line flags over the configuration
func (cmd *CheckCmd) override(config *tmplindent.Config) {
	if cmd.Indent != "" {
		if size, err := strconv.Atoi(cmd.Indent); err == nil {
			config.Indent = size
		} else {
			config.Indent = cmd.Indent
		}
	}

	if cmd.Attribute != nil {
		config.Attribute = cmd.Attribute
	}

	if cmd.CloseBracket != nil {
		config.CloseBracket = cmd.CloseBracket
	}

	if cmd.Format != "" {
		config.Format = cmd.Format
	}
}

// collect expands the directories among the paths. Files given directly are
// kept even when the filter would skip them.
func (cmd *CheckCmd) collect(config *tmplindent.Config) ([]string, error) {
	paths := cmd.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)

	var files []string

	for _, path := range paths {
		found, err := lint.Collect(path, config.Filter())
		if err != nil {
			return nil, err
		}

		for _, file := range found {
			if !seen[file] {
				seen[file] = true
				files = append(files, file)
			}
		}
	}

	return files, nil
}
