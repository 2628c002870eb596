package tmplindent

import "errors"

// Configuration errors
var (
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrConfigParse is returned when a configuration file cannot be decoded
	ErrConfigParse = errors.New("failed to parse config file")
	// ErrUnknownConfigKey is returned for keys of a TOML file that no field
	// takes
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)
