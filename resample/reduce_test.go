package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/series"
)

func newSeries(t *testing.T, cal calendar.Calendar, start calendar.Date, values []float64) *series.Series {
	t.Helper()
	s, err := series.New(cal, dailyTimes(cal, start, len(values)), values)
	require.NoError(t, err)

	return s
}

func TestReduce(t *testing.T) {
	cal := calendar.Standard{}
	// Two 7-day periods with simple values.
	values := []float64{1, 2, 3, 4, 5, 6, 7, 10, 20, 30, 40, 50, 60, 70}
	s := newSeries(t, cal, date(1990, 1, 1), values)

	tests := []struct {
		op   ReduceOp
		want []float64
	}{
		{ReduceSum, []float64{28, 280}},
		{ReduceMean, []float64{4, 40}},
		{ReduceMin, []float64{1, 10}},
		{ReduceMax, []float64{7, 70}},
		{ReduceCount, []float64{7, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			out, err := Reduce(s, EveryNDays(7), tt.op)
			require.NoError(t, err)
			require.Len(t, out, 2)
			for i, v := range out {
				require.Equal(t, tt.want[i], v.Value, "period %s", v.Period)
			}
		})
	}
}

func TestReduce_SkipsNaN(t *testing.T) {
	cal := calendar.Standard{}
	nan := math.NaN()
	s := newSeries(t, cal, date(1990, 1, 1), []float64{1, nan, 3, nan, nan, nan, nan})

	out, err := Reduce(s, EveryNDays(7), ReduceMean)
	require.NoError(t, err)
	require.Equal(t, 2.0, out[0].Value)

	out, err = Reduce(s, EveryNDays(7), ReduceCount)
	require.NoError(t, err)
	require.Equal(t, 2.0, out[0].Value)
}

func TestReduce_AllNaNPeriod(t *testing.T) {
	cal := calendar.Standard{}
	nan := math.NaN()
	s := newSeries(t, cal, date(1990, 1, 1), []float64{nan, nan, nan})

	out, err := Reduce(s, EveryNDays(3), ReduceSum)
	require.NoError(t, err)
	require.True(t, math.IsNaN(out[0].Value))

	// Count distinguishes "samples, all invalid" from "no samples at all".
	out, err = Reduce(s, EveryNDays(3), ReduceCount)
	require.NoError(t, err)
	require.Equal(t, 0.0, out[0].Value)
}

func TestReduce_EmptyPeriodIsNaN(t *testing.T) {
	cal := calendar.Standard{}
	times := append(
		dailyTimes(cal, date(1990, 1, 1), 31),
		dailyTimes(cal, date(1992, 1, 1), 31)...,
	)
	values := make([]float64, len(times))
	for i := range values {
		values[i] = 1
	}
	s, err := series.New(cal, times, values)
	require.NoError(t, err)

	out, err := Reduce(s, Annual(1), ReduceCount)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, 31.0, out[0].Value)
	require.True(t, math.IsNaN(out[1].Value), "gap year has no samples")
	require.Equal(t, 31.0, out[2].Value)
}

func TestReduce_UnknownOperator(t *testing.T) {
	cal := calendar.Standard{}
	s := newSeries(t, cal, date(1990, 1, 1), []float64{1})

	_, err := Reduce(s, Annual(1), ReduceOp(0xff))
	require.ErrorIs(t, err, ErrUnknownReduce)
}
