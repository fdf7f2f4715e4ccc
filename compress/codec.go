package compress

import (
	"fmt"

	"github.com/mfortier/climdex/format"
)

// Codec compresses and decompresses climatology blob payloads.
//
// Payloads are the concatenated float64 tables of many spatial points —
// large, repetitive, and written once but read many times — so the codec
// choice trades encode cost against blob size. All implementations are
// stateless values, safe for concurrent use; returned slices are owned by
// the caller and input slices are never modified.
type Codec interface {
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress, returning an error for corrupted or
	// incompatible input.
	Decompress(data []byte) ([]byte, error)
}

// Get returns the built-in codec for a compression type, rejecting unknown
// types eagerly so a bad configuration never reaches the encode path.
func Get(ct format.CompressionType) (Codec, error) {
	switch ct {
	case format.CompressionNone:
		return NoOp{}, nil
	case format.CompressionZstd:
		return Zstd{}, nil
	case format.CompressionS2:
		return S2{}, nil
	case format.CompressionLZ4:
		return LZ4{}, nil
	default:
		return nil, fmt.Errorf("compress: unsupported compression type: %s", ct)
	}
}

// NoOp passes payloads through unchanged. Useful when the payload is small
// or the caller compresses at a higher layer.
type NoOp struct{}

var _ Codec = NoOp{}

// Compress returns data as-is, sharing the underlying memory.
func (NoOp) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data as-is, sharing the underlying memory.
func (NoOp) Decompress(data []byte) ([]byte, error) { return data, nil }
