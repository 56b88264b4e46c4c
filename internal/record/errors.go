package record

import "errors"

// Error kinds. Every error surfaced by flipper wraps exactly one of these so
// callers can classify it with errors.Is.
var (
	ErrConfig       = errors.New("configuration error")
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrAuth         = errors.New("credential rejected by provider")
	ErrTransport    = errors.New("transport error")
	ErrPartialBatch = errors.New("batch flip incomplete")
)
