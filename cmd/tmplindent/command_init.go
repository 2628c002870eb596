package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shibukawa/tmplindent"
)

// InitCmd represents the init command
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(ctx *Context) error {
	if !i.Force && fileExists(ctx.Config) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, ctx.Config)
	}

	err := os.WriteFile(ctx.Config, []byte(tmplindent.SampleConfig), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", ctx.Config, err)
	}

	ctx.status(color.FgGreen, "Created %s", ctx.Config)

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
