package compress

import (
	"fmt"

	"github.com/anvilkit/anvil/format"
)

// Compressor compresses a chunk's serialized NBT payload before it is
// written into a region file sector.
//
// Memory management: the input slice is never modified. The gzip and zlib
// codecs return a newly allocated slice; NoOpCompressor returns the input
// slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor, restoring the original NBT payload
// bytes read from a region file sector.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression for a single
// compression type byte stored in a chunk's sector header.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a fresh Codec for compressionType. target enriches
// the error message when compressionType is unrecognized.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionZlib:
		return NewZlibCodec(), nil
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

// GetCodec retrieves a built-in Codec for the specified compression type.
// Unlike CreateCodec, stateless codecs are returned without allocation.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionGzip:
		return GzipCodec{}, nil
	case format.CompressionZlib:
		return ZlibCodec{}, nil
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
	}
}
