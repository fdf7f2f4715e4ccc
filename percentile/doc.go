// Package percentile estimates climatological day-of-year quantiles.
//
// Adaptive-threshold indicators ("days below the 10th percentile of minimum
// temperature for this calendar day") need a per-day-of-year threshold built
// from a historical calibration span. The Engine pools, for each day of the
// year, the values inside a centered window of days — wrapping circularly
// across the Dec/Jan boundary — across every calibration year, and takes a
// quantile of the pooled set with linear interpolation.
//
// The result is a Table: one value per day-of-year per spatial point. Tables
// are year-agnostic and can be broadcast onto any time axis in the same
// calendar, then compared against fresh data to form exceedance masks for
// the run-length pipeline. Tables can also be serialized compactly; see the
// blob package.
package percentile
