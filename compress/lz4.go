package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses payloads in LZ4 block format: the fastest decompression of
// the built-in codecs, at a moderate ratio.
type LZ4 struct{}

var _ Codec = LZ4{}

// lz4 compressors keep internal matching state worth reusing across calls.
var lz4Pool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// Compress compresses data as a single LZ4 block.
func (LZ4) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	lc := lz4Pool.Get().(*lz4.Compressor)
	defer lz4Pool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress inflates an LZ4 block. The block format does not record the
// decompressed size, so the buffer starts at 4x the input and doubles on
// short-buffer errors, up to a 128MB ceiling that guards against corrupted
// input.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024

	for bufSize := len(data) * 4; bufSize <= maxSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
