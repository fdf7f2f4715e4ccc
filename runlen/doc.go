// Package runlen analyzes runs of consecutive true samples in boolean
// sequences.
//
// A "spell" in a climate indicator (heat wave, dry spell, frost period) is a
// maximal run of consecutive days satisfying a condition. This package is
// the single shared engine behind all spell-based indicators: Analyze
// extracts the runs in one O(n) scan, and the statistics functions derive
// the aggregate each indicator needs — longest run, count of spells of a
// minimum length, days inside such spells, and the position of the first or
// last qualifying spell.
//
// All functions are pure: they take an in-memory sequence, allocate only
// their output, and hold no state between calls, so independent spatial
// points can be processed concurrently by any external scheduler without
// coordination.
package runlen
