package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/shibukawa/tmplindent"
)

var version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Color   bool
	Stdout  io.Writer
	Stderr  io.Writer
	// Ctx carries the logger and the cancellation of the run
	Ctx context.Context
}

func newContext(parent context.Context, stdout, stderr io.Writer, configPath string, verbose, quiet, noColor bool) *Context {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}

	return &Context{
		Config:  configPath,
		Verbose: verbose,
		Quiet:   quiet,
		Color:   !noColor && !color.NoColor,
		Stdout:  stdout,
		Stderr:  stderr,
		Ctx:     withLogger(parent, newLogger(stderr, level)),
	}
}

// status prints a progress line on stderr unless the run is quiet
func (c *Context) status(attr color.Attribute, format string, args ...any) {
	if c.Quiet {
		return
	}

	line := color.New(attr)
	if !c.Color {
		line.DisableColor()
	}

	line.Fprintf(c.Stderr, format+"\n", args...)
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:".tmplindent.yaml" type:"path"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	NoColor bool       `help:"Disable colored output"`
	Check   CheckCmd   `cmd:"" default:"withargs" help:"Check the indentation of templates"`
	Offsets OffsetsCmd `cmd:"" help:"Show the indentation relation of every token of a template"`
	Init    InitCmd    `cmd:"" help:"Write a default configuration file"`
	MCP     MCPCmd     `cmd:"" name:"mcp" help:"Serve the checker as an MCP tool over stdio"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Stdout, "tmplindent %s\n", version)
	return nil
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("tmplindent"),
		kong.Description("Indentation checker for Vue and HTML templates"),
		kong.UsageOnError(),
	)

	appCtx := newContext(context.Background(), os.Stdout, os.Stderr, CLI.Config, CLI.Verbose, CLI.Quiet, CLI.NoColor)

	err := kctx.Run(appCtx)
	if errors.Is(err, ErrFindingsReported) {
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

// loadConfig loads the configuration of the run
func (c *Context) loadConfig() (*tmplindent.Config, error) {
	config, err := tmplindent.LoadConfig(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}
