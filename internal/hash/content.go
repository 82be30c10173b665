// Package hash provides the content-addressing primitive used to name
// opaque connector sidecar files: byte-identical raw_bytes blocks dumped
// from the same catalog share one sidecar file instead of being written
// once per connector (SPEC_FULL.md §4.13).
package hash

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentName returns a short, stable, filesystem-safe name derived from
// the xxHash64 of data, suitable as a sidecar file's base name.
func ContentName(data []byte) string {
	sum := xxhash.Sum64(data)

	var buf [8]byte
	for i := range buf {
		buf[i] = byte(sum >> (8 * (7 - i)))
	}

	return hex.EncodeToString(buf[:])
}
