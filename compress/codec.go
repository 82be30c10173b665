// Package compress provides pluggable compression codecs for the opaque
// connector sidecar payloads written by the textual projection
// (SPEC_FULL.md §4.13). A catalog dump containing many byte-identical or
// highly repetitive "opaque" (Format="bin") connectors benefits from the
// same codec choices mebo offers for its columnar timestamp/value payloads.
package compress

import (
	"fmt"

	"github.com/ymj120572092/pylabview/format"
)

// Compressor compresses a sidecar payload before it is written to disk.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a sidecar payload to its original bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type %s", compressionType)
}
