// Package tmplindent holds the project configuration of the template
// indentation checker.
package tmplindent

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/tmplindent/indent"
	"github.com/shibukawa/tmplindent/lint"
	"github.com/shibukawa/tmplindent/report"
)

// DefaultConfigFile is the configuration file looked up when none is given
const DefaultConfigFile = ".tmplindent.yaml"

// Config represents the checker configuration
type Config struct {
	// Indent is "tab" or the number of spaces per level
	Indent       any  `yaml:"indent" toml:"indent"`
	Attribute    *int `yaml:"attribute" toml:"attribute"`
	CloseBracket *int `yaml:"close_bracket" toml:"close_bracket"`

	Include    []string `yaml:"include" toml:"include"`
	Exclude    []string `yaml:"exclude" toml:"exclude"`
	Extensions []string `yaml:"extensions" toml:"extensions"`
	// Markdown enables the fenced vue and html blocks of Markdown files
	Markdown         *bool `yaml:"markdown" toml:"markdown"`
	RespectGitignore *bool `yaml:"respect_gitignore" toml:"respect_gitignore"`

	Concurrency int    `yaml:"concurrency" toml:"concurrency"`
	Format      string `yaml:"format" toml:"format"`
}

// LoadConfig loads configuration from the specified file. A missing file
// yields the defaults. Files ending in .toml are read as TOML, anything
// else as YAML.
func LoadConfig(configPath string) (*Config, error) {
	err := loadEnvFiles(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := parseConfig(configPath, data)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	expandConfigEnvVars(config)

	return config, nil
}

func parseConfig(configPath string, data []byte) (*Config, error) {
	var config Config

	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		meta, err := toml.Decode(string(data), &config)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownConfigKey, undecoded[0])
		}

		return &config, nil
	}

	// Strict mode rejects unknown fields
	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if _, err := indent.ParseOptions(config.Indent, config.Attribute, config.CloseBracket); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension '%s' must start with a dot", ErrConfigValidation, ext)
		}

		if lint.KindOf("file"+ext) == lint.KindUnsupported {
			return fmt.Errorf("%w: extension '%s' is not supported: use .vue, .html, .htm, .md or .markdown", ErrConfigValidation, ext)
		}
	}

	if config.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must be non-negative, got %d", ErrConfigValidation, config.Concurrency)
	}

	if config.Format != "" {
		if _, err := report.ByName(config.Format, false); err != nil {
			return fmt.Errorf("%w: %w", ErrConfigValidation, err)
		}
	}

	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Indent:           4,
		Attribute:        intPtr(1),
		CloseBracket:     intPtr(0),
		Include:          []string{},
		Exclude:          []string{},
		Extensions:       []string{".vue", ".html", ".md"},
		Markdown:         boolPtr(true),
		RespectGitignore: boolPtr(true),
		Concurrency:      0, // GOMAXPROCS
		Format:           "text",
	}
}

// applyDefaults fills the values a configuration file left out
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Indent == nil {
		config.Indent = defaults.Indent
	}

	if config.Attribute == nil {
		config.Attribute = defaults.Attribute
	}

	if config.CloseBracket == nil {
		config.CloseBracket = defaults.CloseBracket
	}

	if config.Include == nil {
		config.Include = defaults.Include
	}

	if config.Exclude == nil {
		config.Exclude = defaults.Exclude
	}

	if len(config.Extensions) == 0 {
		config.Extensions = defaults.Extensions
	}

	if config.Markdown == nil {
		config.Markdown = defaults.Markdown
	}

	if config.RespectGitignore == nil {
		config.RespectGitignore = defaults.RespectGitignore
	}

	if config.Format == "" {
		config.Format = defaults.Format
	}
}

// loadEnvFiles loads .env from the working directory and from the
// directory of the configuration file. Variables already set win.
func loadEnvFiles(configDir string) error {
	candidates := []string{".env"}
	if configDir != "." && configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, ".env"))
	}

	for _, file := range candidates {
		if !fileExists(file) {
			continue
		}

		err := godotenv.Load(file)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return nil
}

var (
	bracedVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return plainVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in the path patterns
func expandConfigEnvVars(config *Config) {
	for i, pattern := range config.Include {
		config.Include[i] = expandEnvVars(pattern)
	}

	for i, pattern := range config.Exclude {
		config.Exclude[i] = expandEnvVars(pattern)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IndentOptions returns the engine options of the configuration
func (c *Config) IndentOptions() (indent.Options, error) {
	opts, err := indent.ParseOptions(c.Indent, c.Attribute, c.CloseBracket)
	if err != nil {
		return opts, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	return opts, nil
}

// LintOptions returns the options for checking files
func (c *Config) LintOptions(logger *log.Logger) (lint.Options, error) {
	indentOptions, err := c.IndentOptions()
	if err != nil {
		return lint.Options{}, err
	}

	return lint.Options{
		Indent:      indentOptions,
		Markdown:    c.Markdown == nil || *c.Markdown,
		Concurrency: c.Concurrency,
		Logger:      logger,
	}, nil
}

// Filter returns the file selection of directory walks. Markdown files are
// left out when Markdown checking is off.
func (c *Config) Filter() lint.Filter {
	markdown := c.Markdown == nil || *c.Markdown

	extensions := c.Extensions
	if len(extensions) == 0 {
		extensions = []string{".vue", ".html", ".htm", ".md", ".markdown"}
	}

	selected := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if markdown || lint.KindOf("file"+ext) != lint.KindMarkdown {
			selected = append(selected, ext)
		}
	}

	return lint.Filter{
		Extensions:       selected,
		Include:          c.Include,
		Exclude:          c.Exclude,
		RespectGitignore: c.RespectGitignore == nil || *c.RespectGitignore,
	}
}

// SampleConfig is the configuration written by `tmplindent init`
const SampleConfig = `# Indentation: "tab" or the number of spaces per level
indent: 4

# Levels of the first attribute relative to its tag
attribute: 1

# Levels of a closing bracket relative to its tag
close_bracket: 0

# Files to check when a directory is given
extensions: [".vue", ".html", ".md"]
include: []
exclude: ["dist/", "vendor/"]
respect_gitignore: true

# Check fenced vue and html blocks of Markdown files
markdown: true

# Files checked at once (0: number of CPUs)
concurrency: 0

# Output format: text, json, yaml or checkstyle
format: text
`
