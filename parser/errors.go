package parser

import "errors"

// Sentinel errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of script")
	ErrInvalidVFor     = errors.New("invalid v-for expression")
	ErrScriptTokens    = errors.New("script could not be tokenized")
)
