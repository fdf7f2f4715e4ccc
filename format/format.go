// Package format declares the closed enumerations shared by the climatology
// blob codec. The numeric values are written into persisted blobs, so they
// are stable and must never be renumbered.
package format

// CompressionType selects the payload compression of a climatology blob.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
