// Package blob persists day-of-year percentile tables in a compact binary
// format.
//
// Building a climatology is the expensive half of percentile-based
// indicators: it scans a multi-decade calibration span for every spatial
// point. The resulting tables are small and reused by every later indicator
// evaluation, so they are worth serializing once and shipping around. A blob
// holds the tables of many spatial points for one climatology configuration
// (one calendar, window and quantile), keyed by 64-bit point IDs, with the
// payload optionally compressed (Zstd by default) and guarded by a CRC32
// checksum.
//
// Encoding:
//
//	enc, _ := blob.NewTableEncoder()
//	_ = enc.Add(climdex.PointID("45.50N;73.57W"), table)
//	data, _ := enc.Finish()
//
// Decoding:
//
//	dec, err := blob.NewTableDecoder(data)
//	if err != nil { ... }
//	table, err := dec.Table(climdex.PointID("45.50N;73.57W"))
package blob
