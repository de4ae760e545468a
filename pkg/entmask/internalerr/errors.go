package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnsupportedInput  = errors.New("unsupported input format")
	ErrMissingDocID      = errors.New("document identifier missing")
	ErrInvalidIdentifier = errors.New("invalid vocabulary identifier")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
