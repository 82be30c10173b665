package rsrc

import "errors"

var (
	// ErrBadMagic is returned when a header's leading 6 bytes aren't "RSRC\r\n".
	ErrBadMagic = errors.New("rsrc: bad header magic")
	// ErrBadLBVW is returned when a header's id4 field isn't "LBVW".
	ErrBadLBVW = errors.New("rsrc: bad LBVW tag")
	// ErrUnknownFileType is returned when a header's file-type tag matches none of the 11 known kinds.
	ErrUnknownFileType = errors.New("rsrc: unrecognized file type")
	// ErrBrokenChain is returned when a header's offset points backward or nowhere, breaking the chain.
	ErrBrokenChain = errors.New("rsrc: broken header chain")
	// ErrChainTooLong is returned when more than a File's configured header-chain
	// limit is seen without reaching a terminating header.
	ErrChainTooLong = errors.New("rsrc: header chain exceeds limit")
)
