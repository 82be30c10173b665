package connector

import "errors"

var (
	// ErrLengthMismatch is returned when a record's declared header length
	// disagrees with the bytes actually available to it.
	ErrLengthMismatch = errors.New("connector: length mismatch")
	// ErrMissingNested is returned when a TypeDef's mandatory nested
	// connector could not be parsed.
	ErrMissingNested = errors.New("connector: missing nested connector")
)
