// Package resample partitions calendar-aware timelines into periods and
// drives per-period statistics.
//
// A Freq declares the frequency class (annual, seasonal, monthly, N-day)
// and its anchor; Partition turns a timeline into contiguous half-open
// Periods under a calendar; Reduce computes period-wise sums, means, minima,
// maxima and counts of numeric series; and Aggregator feeds each period's
// slice of a boolean exceedance mask through the runlen engine, one spatial
// point at a time.
//
// The compact frequency grammar ("YS", "AS-JUL", "QS-DEC", "MS", "7D") is
// accepted through ParseFreq for compatibility with external callers;
// everything internal works with the structured Freq descriptor, and unknown
// labels are rejected when parsed, not when computed.
//
// Spells are truncated at period boundaries; see Aggregator for the policy
// and its consequences.
package resample
