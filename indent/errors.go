package indent

import "errors"

// Sentinel errors
var (
	ErrInvalidOption = errors.New("invalid indent option")

	// contract violations raised while building or resolving the offset graph
	ErrMissingToken     = errors.New("expected token is missing")
	ErrUnresolvedBase   = errors.New("offset base is not on an earlier line")
	ErrUnclassifiedKind = errors.New("node kind has no layout classification")
)
