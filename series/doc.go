// Package series defines the calendar-aware time-series values consumed by
// the climdex engines.
//
// A Series is an immutable ordered sequence of (date, value) samples under a
// declared calendar; a Mask is the boolean exceedance sequence produced by
// comparing a Series against a threshold. All invariants (strictly
// increasing dates, calendar-valid dates, matching lengths) are validated
// eagerly at construction so the downstream engines can scan without
// re-checking.
//
// The package is unit-agnostic: values are dimensionless float64 numbers and
// any unit handling belongs to the caller.
package series
