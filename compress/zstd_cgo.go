//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress compresses data as a zstd frame at the default level.
func (Zstd) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress inflates a zstd frame.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
