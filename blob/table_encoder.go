package blob

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/mfortier/climdex/compress"
	"github.com/mfortier/climdex/format"
	"github.com/mfortier/climdex/internal/options"
	"github.com/mfortier/climdex/percentile"
)

// TableEncoder assembles percentile tables for many spatial points into one
// compact blob.
//
// The first table added fixes the blob's calendar, window, quantile and
// table size; every later table must match, so a blob is always one
// homogeneous climatology. Typical use:
//
//	enc, _ := blob.NewTableEncoder(blob.WithCompression(format.CompressionZstd))
//	for _, pt := range points {
//	    if err := enc.Add(pt.ID, pt.Table); err != nil {
//	        return err
//	    }
//	}
//	data, err := enc.Finish()
type TableEncoder struct {
	comp  format.CompressionType
	codec compress.Codec

	kind    uint8
	window  int
	per     float64
	size    int
	ids     []uint64
	offsets []uint32
	payload []byte
	seen    map[uint64]struct{}
}

// TableEncoderOption configures a TableEncoder.
type TableEncoderOption = options.Option[*TableEncoder]

// WithCompression selects the payload compression. The default is Zstd.
func WithCompression(ct format.CompressionType) TableEncoderOption {
	return options.New(func(e *TableEncoder) error {
		codec, err := compress.Get(ct)
		if err != nil {
			return err
		}
		e.comp = ct
		e.codec = codec

		return nil
	})
}

// NewTableEncoder creates an encoder. Invalid options (such as an unknown
// compression type) are rejected here, before any table is added.
func NewTableEncoder(opts ...TableEncoderOption) (*TableEncoder, error) {
	e := &TableEncoder{
		comp: format.CompressionZstd,
		seen: make(map[uint64]struct{}),
	}
	codec, err := compress.Get(e.comp)
	if err != nil {
		return nil, err
	}
	e.codec = codec

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// PointCount returns the number of tables added so far.
func (e *TableEncoder) PointCount() int { return len(e.ids) }

// Add appends one spatial point's table under the given point ID. IDs are
// commonly derived from grid-point labels with climdex.PointID. Adding a
// duplicate ID or a table whose configuration differs from the first one is
// an error.
func (e *TableEncoder) Add(pointID uint64, t *percentile.Table) error {
	if t == nil {
		return errors.New("blob: nil table")
	}
	if _, dup := e.seen[pointID]; dup {
		return fmt.Errorf("%w: %#x", ErrDuplicatePoint, pointID)
	}

	if len(e.ids) == 0 {
		e.kind = uint8(t.CalendarKind())
		e.window = t.Window()
		e.per = t.Quantile()
		e.size = t.Size()
		if e.window > math.MaxUint8 {
			return fmt.Errorf("blob: window %d exceeds format limit %d", e.window, math.MaxUint8)
		}
	} else if uint8(t.CalendarKind()) != e.kind || t.Window() != e.window || t.Quantile() != e.per || t.Size() != e.size {
		return fmt.Errorf("%w: point %#x", ErrTableMismatch, pointID)
	}

	offset := len(e.payload)
	if offset+e.size*8 > math.MaxUint32 {
		return errors.New("blob: payload exceeds format limit")
	}

	buf := make([]byte, e.size*8)
	for i, v := range t.Entries() {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	e.seen[pointID] = struct{}{}
	e.ids = append(e.ids, pointID)
	e.offsets = append(e.offsets, uint32(offset))
	e.payload = append(e.payload, buf...)

	return nil
}

// Finish compresses the payload and returns the final blob bytes. The
// encoder must contain at least one table.
func (e *TableEncoder) Finish() ([]byte, error) {
	if len(e.ids) == 0 {
		return nil, errors.New("blob: no tables added")
	}

	compressed, err := e.codec.Compress(e.payload)
	if err != nil {
		return nil, fmt.Errorf("blob: compress payload: %w", err)
	}

	out := make([]byte, headerSize+len(e.ids)*indexEntrySize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], magic)
	out[4] = version
	out[5] = uint8(e.comp)
	out[6] = e.kind
	out[7] = uint8(e.window)
	binary.LittleEndian.PutUint64(out[8:], math.Float64bits(e.per))
	binary.LittleEndian.PutUint32(out[16:], uint32(len(e.ids)))
	binary.LittleEndian.PutUint16(out[20:], uint16(e.size))
	binary.LittleEndian.PutUint32(out[24:], crc32.ChecksumIEEE(compressed))
	binary.LittleEndian.PutUint32(out[28:], uint32(len(compressed)))

	idx := headerSize
	for i, id := range e.ids {
		binary.LittleEndian.PutUint64(out[idx:], id)
		binary.LittleEndian.PutUint32(out[idx+8:], e.offsets[i])
		idx += indexEntrySize
	}
	copy(out[idx:], compressed)

	return out, nil
}
