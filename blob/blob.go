package blob

import "errors"

// Blob layout, all integers little-endian:
//
//	offset size  field
//	0      4     magic "CDX1"
//	4      1     format version (currently 1)
//	5      1     compression type (format.CompressionType)
//	6      1     calendar kind (calendar.Kind)
//	7      1     pooling window (days, odd)
//	8      8     quantile (float64 bits)
//	16     4     point count
//	20     2     table size (entries per point, = max days in year)
//	22     2     reserved, zero
//	24     4     CRC32 (IEEE) of the compressed payload
//	28     4     compressed payload length
//	32     12*n  index: per point, id (8) + byte offset (4) into the
//	             decompressed payload
//	...          compressed payload: per point, tableSize float64 bits
const (
	headerSize     = 32
	indexEntrySize = 12

	magic   = uint32(0x31584443) // "CDX1"
	version = uint8(1)
)

var (
	// ErrCorrupt is returned when a blob fails structural validation:
	// wrong magic, unsupported version, truncated sections or a checksum
	// mismatch. Corrupt blobs never yield partial results.
	ErrCorrupt = errors.New("blob: corrupt or truncated blob")

	// ErrDuplicatePoint is returned when the same point ID is added twice.
	ErrDuplicatePoint = errors.New("blob: duplicate point ID")

	// ErrTableMismatch is returned when a table's calendar, window or
	// quantile differs from the tables already in the encoder. One blob
	// holds one homogeneous climatology.
	ErrTableMismatch = errors.New("blob: table configuration mismatch")

	// ErrUnknownPoint is returned when a requested point ID is not in the
	// blob.
	ErrUnknownPoint = errors.New("blob: unknown point ID")
)
