package indices

import (
	"github.com/mfortier/climdex/resample"
	"github.com/mfortier/climdex/series"
)

// k2c converts a Celsius threshold to Kelvin. Temperature series are
// expected in Kelvin, thresholds are taken in degrees Celsius, matching the
// conventions of the published index definitions.
const k2c = 273.15

// aggregate runs one run-length statistic over a mask, one value per period.
func aggregate(m *series.Mask, freq resample.Freq, stat resample.Statistic, window int) ([]resample.Value, error) {
	agg, err := resample.NewAggregator(m.Times(), m.Calendar(), freq, stat, window)
	if err != nil {
		return nil, err
	}
	vals, err := agg.ApplyMask(m)
	if err != nil {
		return nil, err
	}

	return zip(agg.Periods(), vals), nil
}

func zip(periods []resample.Period, vals []float64) []resample.Value {
	out := make([]resample.Value, len(vals))
	for i, v := range vals {
		out[i] = resample.Value{Period: periods[i], Value: v}
	}

	return out
}
