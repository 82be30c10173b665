//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress compresses data using cgo-backed Zstandard.
func (ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores cgo-backed Zstandard-compressed data.
func (ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
