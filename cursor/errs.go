package cursor

import "errors"

var (
	// ErrShortBuffer is returned when a read would run past the end of the buffer.
	ErrShortBuffer = errors.New("cursor: short buffer")
	// ErrNegativeLength is returned when a caller requests a negative-length read.
	ErrNegativeLength = errors.New("cursor: negative length")
)
