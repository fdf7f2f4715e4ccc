package blob

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/compress"
	"github.com/mfortier/climdex/format"
	"github.com/mfortier/climdex/percentile"
)

// TableDecoder reads a blob produced by TableEncoder.
//
// Construction validates the whole blob eagerly — magic, version, checksum,
// section sizes, compression and calendar codes — and decompresses the
// payload once; Table lookups afterwards are cheap and cannot fail
// structurally.
type TableDecoder struct {
	kind    calendar.Kind
	window  int
	per     float64
	size    int
	ids     []uint64
	offsets map[uint64]uint32
	payload []byte
}

// NewTableDecoder parses and validates blob data. Corrupt input fails here
// with ErrCorrupt; a valid blob never yields partial tables later.
func NewTableDecoder(data []byte) (*TableDecoder, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrCorrupt, len(data), headerSize)
	}
	if binary.LittleEndian.Uint32(data[0:]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[4])
	}

	codec, err := compress.Get(format.CompressionType(data[5]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	kind := calendar.Kind(data[6])
	if _, err := calendar.FromKind(kind); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	window := int(data[7])
	per := math.Float64frombits(binary.LittleEndian.Uint64(data[8:]))
	count := int(binary.LittleEndian.Uint32(data[16:]))
	size := int(binary.LittleEndian.Uint16(data[20:]))
	sum := binary.LittleEndian.Uint32(data[24:])
	payloadLen := int(binary.LittleEndian.Uint32(data[28:]))

	want := headerSize + count*indexEntrySize + payloadLen
	if len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes, header describes %d", ErrCorrupt, len(data), want)
	}

	compressed := data[headerSize+count*indexEntrySize:]
	if crc32.ChecksumIEEE(compressed) != sum {
		return nil, fmt.Errorf("%w: payload checksum mismatch", ErrCorrupt)
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(payload) != count*size*8 {
		return nil, fmt.Errorf("%w: payload is %d bytes, expected %d", ErrCorrupt, len(payload), count*size*8)
	}

	d := &TableDecoder{
		kind:    kind,
		window:  window,
		per:     per,
		size:    size,
		ids:     make([]uint64, count),
		offsets: make(map[uint64]uint32, count),
		payload: payload,
	}
	idx := headerSize
	for i := 0; i < count; i++ {
		id := binary.LittleEndian.Uint64(data[idx:])
		off := binary.LittleEndian.Uint32(data[idx+8:])
		if int(off)+size*8 > len(payload) {
			return nil, fmt.Errorf("%w: index offset %d out of payload bounds", ErrCorrupt, off)
		}
		d.ids[i] = id
		d.offsets[id] = off
		idx += indexEntrySize
	}

	return d, nil
}

// CalendarKind returns the calendar the blob's tables were built under.
func (d *TableDecoder) CalendarKind() calendar.Kind { return d.kind }

// Window returns the pooling window of the blob's tables.
func (d *TableDecoder) Window() int { return d.window }

// Quantile returns the quantile of the blob's tables.
func (d *TableDecoder) Quantile() float64 { return d.per }

// PointCount returns the number of spatial points in the blob.
func (d *TableDecoder) PointCount() int { return len(d.ids) }

// PointIDs returns the point IDs in the order they were encoded. The
// returned slice is shared; treat it as read-only.
func (d *TableDecoder) PointIDs() []uint64 { return d.ids }

// Table reconstructs one point's percentile table, or returns
// ErrUnknownPoint for an ID not present in the blob.
func (d *TableDecoder) Table(pointID uint64) (*percentile.Table, error) {
	off, ok := d.offsets[pointID]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownPoint, pointID)
	}

	entries := make([]float64, d.size)
	buf := d.payload[off:]
	for i := range entries {
		entries[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}

	return percentile.NewTable(d.kind, d.window, d.per, entries)
}
