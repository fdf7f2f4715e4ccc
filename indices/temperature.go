package indices

import (
	"math"

	"github.com/mfortier/climdex/percentile"
	"github.com/mfortier/climdex/resample"
	"github.com/mfortier/climdex/series"
)

// FrostDays counts days per period with minimum temperature below 0°C.
func FrostDays(tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(tasmin, k2c), freq, resample.StatDayCount, 1)
}

// IceDays counts days per period with maximum temperature below 0°C.
func IceDays(tasmax *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(tasmax, k2c), freq, resample.StatDayCount, 1)
}

// HotDays counts days per period with maximum temperature above threshC
// degrees Celsius.
func HotDays(tasmax *series.Series, threshC float64, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Greater(tasmax, k2c+threshC), freq, resample.StatDayCount, 1)
}

// ConsecutiveFrostDays returns the longest spell of consecutive frost days
// (minimum temperature below 0°C) per period. Use an annual July anchor
// ("AS-JUL") so northern-hemisphere winters are not split at New Year.
func ConsecutiveFrostDays(tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(tasmin, k2c), freq, resample.StatLongestRun, 0)
}

// FirstFrostDay returns, per period, the day index on the global time axis
// where the first frost spell of at least window days completes, or NaN when
// the period has none.
func FirstFrostDay(tasmin *series.Series, window int, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(tasmin, k2c), freq, resample.StatFirstRunEnd, window)
}

// LastFrostDay returns, per period, the day index on the global time axis
// where the last frost spell of at least window days begins, or NaN when the
// period has none.
func LastFrostDay(tasmin *series.Series, window int, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(tasmin, k2c), freq, resample.StatLastRunStart, window)
}

// ColdSpellDays counts days per period belonging to a cold spell: at least
// window consecutive days with mean temperature below threshC degrees
// Celsius.
func ColdSpellDays(tas *series.Series, threshC float64, window int, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Less(tas, k2c+threshC), freq, resample.StatDayCount, window)
}

// HeatWaveIndex counts days per period belonging to a heat wave: at least
// window consecutive days with maximum temperature above threshC degrees
// Celsius. The classical definition uses threshC = 25 and window = 5.
func HeatWaveIndex(tasmax *series.Series, threshC float64, window int, freq resample.Freq) ([]resample.Value, error) {
	return aggregate(series.Greater(tasmax, k2c+threshC), freq, resample.StatDayCount, window)
}

// CoolingDegreeDays sums, per period, the degrees by which mean temperature
// exceeds baseC degrees Celsius.
func CoolingDegreeDays(tas *series.Series, baseC float64, freq resample.Freq) ([]resample.Value, error) {
	base := k2c + baseC
	excess := series.Map(tas, func(v float64) float64 { return math.Max(v-base, 0) })

	return resample.Reduce(excess, freq, resample.ReduceSum)
}

// HeatingDegreeDays sums, per period, the degrees by which mean temperature
// falls short of baseC degrees Celsius.
func HeatingDegreeDays(tas *series.Series, baseC float64, freq resample.Freq) ([]resample.Value, error) {
	base := k2c + baseC
	deficit := series.Map(tas, func(v float64) float64 { return math.Max(base-v, 0) })

	return resample.Reduce(deficit, freq, resample.ReduceSum)
}

// GrowingDegreeDays sums, per period, the degrees of mean temperature above
// baseC degrees Celsius (commonly 4°C).
func GrowingDegreeDays(tas *series.Series, baseC float64, freq resample.Freq) ([]resample.Value, error) {
	return CoolingDegreeDays(tas, baseC, freq)
}

// DailyTemperatureRange returns the period mean of the daily max-min
// temperature difference.
func DailyTemperatureRange(tasmax, tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	dtr, err := series.Combine(tasmax, tasmin, func(tx, tn float64) float64 { return tx - tn })
	if err != nil {
		return nil, err
	}

	return resample.Reduce(dtr, freq, resample.ReduceMean)
}

// FreezeThawCycles counts days per period where the temperature crossed
// freezing: maximum above 0°C and minimum below 0°C on the same day.
func FreezeThawCycles(tasmax, tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	thaw := series.Greater(tasmax, k2c)
	freeze := series.Less(tasmin, k2c)
	both, err := series.And(thaw, freeze)
	if err != nil {
		return nil, err
	}

	return aggregate(both, freq, resample.StatDayCount, 1)
}

// TG returns the period mean of daily mean temperature.
func TG(tas *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tas, freq, resample.ReduceMean)
}

// TN returns the period mean of daily minimum temperature.
func TN(tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tasmin, freq, resample.ReduceMean)
}

// TX returns the period mean of daily maximum temperature.
func TX(tasmax *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tasmax, freq, resample.ReduceMean)
}

// TNn returns the period minimum of daily minimum temperature.
func TNn(tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tasmin, freq, resample.ReduceMin)
}

// TNx returns the period maximum of daily minimum temperature.
func TNx(tasmin *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tasmin, freq, resample.ReduceMax)
}

// TXn returns the period minimum of daily maximum temperature.
func TXn(tasmax *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tasmax, freq, resample.ReduceMin)
}

// TXx returns the period maximum of daily maximum temperature.
func TXx(tasmax *series.Series, freq resample.Freq) ([]resample.Value, error) {
	return resample.Reduce(tasmax, freq, resample.ReduceMax)
}

// TN10p counts days per period with minimum temperature below the
// climatological 10th-percentile table for that calendar day. The table is
// typically built by percentile.Engine with the default quantile over a
// reference span.
func TN10p(tasmin *series.Series, table *percentile.Table, freq resample.Freq) ([]resample.Value, error) {
	return percentileDays(tasmin, table, freq, series.LessElem)
}

// TX90p counts days per period with maximum temperature above the
// climatological 90th-percentile table for that calendar day.
func TX90p(tasmax *series.Series, table *percentile.Table, freq resample.Freq) ([]resample.Value, error) {
	return percentileDays(tasmax, table, freq, series.GreaterElem)
}

func percentileDays(
	s *series.Series,
	table *percentile.Table,
	freq resample.Freq,
	cmp func(*series.Series, []float64) (*series.Mask, error),
) ([]resample.Value, error) {
	thresh, err := table.Broadcast(s.Times(), s.Calendar())
	if err != nil {
		return nil, err
	}
	mask, err := cmp(s, thresh)
	if err != nil {
		return nil, err
	}

	return aggregate(mask, freq, resample.StatDayCount, 1)
}
