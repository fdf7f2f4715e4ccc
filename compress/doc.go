// Package compress provides the payload codecs used by the climatology blob
// format.
//
// Percentile tables are built once from a long calibration span and then
// consumed by many indicator evaluations, so they are usually persisted or
// shipped between processes. The blob payload — concatenated float64 tables
// for many spatial points — compresses well, and the codec is chosen per
// blob: None, Zstd (best ratio), S2 (fastest encode) or LZ4 (fastest
// decode).
//
// Codecs are resolved from format.CompressionType once, at encoder
// configuration time, via Get; unknown types are rejected there.
package compress
