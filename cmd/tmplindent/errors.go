package main

import "errors"

// Sentinel errors for command operations
var (
	// ErrFindingsReported makes the process exit with status 1
	ErrFindingsReported = errors.New("indentation problems found")
	ErrConfigExists     = errors.New("configuration file already exists")
	ErrNoFiles          = errors.New("no files to check")
	ErrMissingSource    = errors.New("either path or source is required")
)
