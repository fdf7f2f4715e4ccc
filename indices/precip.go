package indices

import (
	"github.com/mfortier/climdex/resample"
	"github.com/mfortier/climdex/series"
)

// WetDays counts days per period with precipitation at or above thresh
// (same units as the series, typically mm/day).
func WetDays(pr *series.Series, thresh float64, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.GreaterEqual(pr, thresh), freq, resample.StatDayCount, 1)
}

// ConsecutiveWetDays returns the longest spell per period of days with
// precipitation at or above thresh.
func ConsecutiveWetDays(pr *series.Series, thresh float64, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.GreaterEqual(pr, thresh), freq, resample.StatLongestRun, 0)
}

// ConsecutiveDryDays returns the longest spell per period of days with
// precipitation below thresh.
func ConsecutiveDryDays(pr *series.Series, thresh float64, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(pr, thresh), freq, resample.StatLongestRun, 0)
}

// WetSpellFrequency counts, per period, the wet spells of at least window
// consecutive days with precipitation at or above thresh. Each spell counts
// once regardless of its length.
func WetSpellFrequency(pr *series.Series, thresh float64, window int, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.GreaterEqual(pr, thresh), freq, resample.StatEventCount, window)
}

// DrySpellFrequency counts, per period, the dry spells of at least window
// consecutive days with precipitation below thresh.
func DrySpellFrequency(pr *series.Series, thresh float64, window int, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(pr, thresh), freq, resample.StatEventCount, window)
}

// PrecipAccumulation returns the total precipitation per period.
func PrecipAccumulation(pr *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(pr, freq, resample.ReduceSum)
}

// MaxOneDayPrecip returns the largest single-day precipitation per period.
func MaxOneDayPrecip(pr *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(pr, freq, resample.ReduceMax)
}
