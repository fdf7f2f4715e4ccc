// Package climdex computes climate indicators from calendar-aware daily
// time series.
//
// The dozens of named indicators in the catalogue are thin wrappers; the
// real machinery is three shared engines that this module implements and
// the wrappers funnel into:
//
//   - Run-length analysis (runlen): maximal runs of consecutive days
//     satisfying a condition, and the spell statistics derived from them.
//   - Period resampling (resample): calendar-aware partitioning of a
//     timeline into annual/seasonal/monthly/N-day periods and the driver
//     that evaluates a run-length statistic per period per spatial point.
//   - Day-of-year percentiles (percentile): climatological quantile tables
//     built from circular windows over a calibration span, used as adaptive
//     thresholds.
//
// Everything is a pure function over immutable in-memory sequences. Spatial
// points are fully independent, so callers can shard them across goroutines,
// worker pools or a task graph without coordination; the engines impose no
// execution model of their own.
//
// # Basic usage
//
// Count heat-wave days (5+ consecutive days above 25°C) per calendar year:
//
//	cal, _ := calendar.New("standard")
//	tasmax, _ := series.New(cal, times, values) // Kelvin
//	vals, err := indices.HeatWaveIndex(tasmax, 25, 5, resample.Annual(1))
//
// Build and persist a 10th-percentile climatology:
//
//	table, err := climdex.PercentileDoy(tasmin, 5, 0.1)
//	enc, _ := blob.NewTableEncoder()
//	_ = enc.Add(climdex.PointID("45.50N;73.57W"), table)
//	data, _ := enc.Finish()
//
// This package provides convenience wrappers for the most common entry
// points; the subpackages expose the full, fine-grained API.
package climdex

import (
	"github.com/mfortier/climdex/internal/hash"
	"github.com/mfortier/climdex/percentile"
	"github.com/mfortier/climdex/resample"
	"github.com/mfortier/climdex/runlen"
	"github.com/mfortier/climdex/series"
)

// PointID derives the stable 64-bit identifier of a spatial point from its
// label (for example a "lat;lon" string). The same label always yields the
// same ID, across processes and architectures, via xxHash64.
func PointID(label string) uint64 {
	return hash.ID(label)
}

// PercentileDoy builds the climatological day-of-year quantile table of one
// point's calibration series: for each day of the year, the per-quantile of
// the values pooled from a centered window of window days across all
// calibration years. It is shorthand for configuring a percentile.Engine
// with the series' own calendar.
func PercentileDoy(calibration *series.Series, window int, per float64) (*percentile.Table, error) {
	engine, err := percentile.NewEngine(calibration.Calendar(),
		percentile.WithWindow(window),
		percentile.WithQuantile(per),
	)
	if err != nil {
		return nil, err
	}

	return engine.Build(calibration)
}

// LongestRun returns the length of the longest stretch of consecutive true
// samples in the mask, 0 when there is none.
func LongestRun(mask []bool) int {
	return runlen.LongestRun(runlen.Analyze(mask))
}

// WindowedRunCount returns the number of mask samples inside runs of at
// least window consecutive true samples. window must be >= 1.
func WindowedRunCount(mask []bool, window int) (int, error) {
	return runlen.DayCount(runlen.Analyze(mask), window)
}

// WindowedRunEvents returns the number of runs of at least window
// consecutive true samples. window must be >= 1.
func WindowedRunEvents(mask []bool, window int) (int, error) {
	return runlen.EventCount(runlen.Analyze(mask), window)
}

// ResampleRunStatistic partitions the mask's timeline with the frequency
// grammar ("YS", "AS-JUL", "QS-DEC", "MS", "7D") and evaluates the given
// run-length statistic per period. It is shorthand for ParseFreq +
// NewAggregator + ApplyMask from the resample package.
func ResampleRunStatistic(m *series.Mask, freqLabel string, stat resample.Statistic, window int) ([]float64, error) {
	freq, err := resample.ParseFreq(freqLabel)
	if err != nil {
		return nil, err
	}
	agg, err := resample.NewAggregator(m.Times(), m.Calendar(), freq, stat, window)
	if err != nil {
		return nil, err
	}

	return agg.ApplyMask(m)
}
