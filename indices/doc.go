// Package indices provides named climate indicators as thin wrappers over
// the core engines.
//
// Every function here follows the same shape: compare a measurement series
// against a threshold to form an exceedance mask, then hand the mask to the
// resample aggregator with the statistic the published index definition
// calls for. The numerical work — run detection, period partitioning,
// percentile thresholds — lives entirely in the runlen, resample and
// percentile packages; the wrappers only pick thresholds and statistics.
//
// Temperature series are expected in Kelvin with thresholds in degrees
// Celsius; precipitation thresholds are in the units of the series. Unit
// conversion and metadata are the caller's concern.
package indices
