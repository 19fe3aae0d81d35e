package tensor

import "errors"

// Common errors. Operations wrap them with details; test with errors.Is.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrUnsupportedValue = errors.New("unsupported value")
)
