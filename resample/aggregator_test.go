package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/runlen"
	"github.com/mfortier/climdex/series"
)

// spellMask marks [from, to] true on an otherwise false mask of n samples.
func spellMask(n, from, to int) []bool {
	mask := make([]bool, n)
	for i := from; i <= to; i++ {
		mask[i] = true
	}

	return mask
}

func TestAggregator_SpellTruncatedAtYearBoundary(t *testing.T) {
	cal := calendar.Standard{}
	// Dec 1 1990 through Jan 31 1991, with one 10-day spell from Dec 27
	// (index 26) through Jan 5 (index 35) straddling the year boundary.
	times := dailyTimes(cal, date(1990, 12, 1), 62)
	mask := spellMask(62, 26, 35)

	t.Run("day count judges each truncated half on its own", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatDayCount, 5)
		require.NoError(t, err)
		require.Len(t, agg.Periods(), 2)

		out, err := agg.Apply(mask)
		require.NoError(t, err)
		require.Equal(t, []float64{5, 5}, out)
	})

	t.Run("window above the truncated length drops both halves", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatDayCount, 6)
		require.NoError(t, err)

		out, err := agg.Apply(mask)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0}, out)
	})

	t.Run("longest run sees the truncated halves", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatLongestRun, 0)
		require.NoError(t, err)

		out, err := agg.Apply(mask)
		require.NoError(t, err)
		require.Equal(t, []float64{5, 5}, out)
	})

	t.Run("per-period day counts never exceed the whole-timeline count", func(t *testing.T) {
		for window := 1; window <= 12; window++ {
			whole, err := runlen.DayCount(runlen.Analyze(mask), window)
			require.NoError(t, err)

			agg, err := NewAggregator(times, cal, Annual(1), StatDayCount, window)
			require.NoError(t, err)
			out, err := agg.Apply(mask)
			require.NoError(t, err)

			sum := 0.0
			for _, v := range out {
				sum += v
			}
			require.LessOrEqual(t, sum, float64(whole), "window %d", window)
		}
	})
}

func TestAggregator_PositionsAreGlobal(t *testing.T) {
	cal := calendar.Standard{}
	times := dailyTimes(cal, date(1990, 12, 1), 62)
	mask := spellMask(62, 26, 35) // Dec 27 .. Jan 5

	t.Run("first run end", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatFirstRunEnd, 5)
		require.NoError(t, err)

		out, err := agg.Apply(mask)
		require.NoError(t, err)
		// The 1990 half ends on Dec 31 (index 30); the 1991 half ends on
		// Jan 5 (index 35). Both indexed on the global axis.
		require.Equal(t, []float64{30, 35}, out)
	})

	t.Run("last run start", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatLastRunStart, 5)
		require.NoError(t, err)

		out, err := agg.Apply(mask)
		require.NoError(t, err)
		require.Equal(t, []float64{26, 31}, out)
	})

	t.Run("no qualifying spell is NaN", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatFirstRunEnd, 11)
		require.NoError(t, err)

		out, err := agg.Apply(mask)
		require.NoError(t, err)
		require.True(t, math.IsNaN(out[0]))
		require.True(t, math.IsNaN(out[1]))
	})
}

func TestAggregator_EventCount(t *testing.T) {
	cal := calendar.Standard{}
	times := dailyTimes(cal, date(1990, 1, 1), 31)
	// Two 3-day spells and one single day within January.
	mask := make([]bool, 31)
	for _, i := range []int{2, 3, 4, 10, 15, 16, 17} {
		mask[i] = true
	}

	agg, err := NewAggregator(times, cal, Monthly(), StatEventCount, 3)
	require.NoError(t, err)

	out, err := agg.Apply(mask)
	require.NoError(t, err)
	require.Equal(t, []float64{2}, out)
}

func TestAggregator_EmptyPeriodIsNaN(t *testing.T) {
	cal := calendar.Standard{}
	times := append(
		dailyTimes(cal, date(1990, 1, 1), 31),
		dailyTimes(cal, date(1992, 1, 1), 31)...,
	)
	mask := make([]bool, len(times))
	for i := range mask {
		mask[i] = true
	}

	agg, err := NewAggregator(times, cal, Annual(1), StatLongestRun, 0)
	require.NoError(t, err)

	out, err := agg.Apply(mask)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, 31.0, out[0])
	require.True(t, math.IsNaN(out[1]))
	require.Equal(t, 31.0, out[2])
}

func TestAggregator_ApplyMask(t *testing.T) {
	cal := calendar.Standard{}
	values := []float64{1, 5, 6, 7, 1, 8, 1}
	s, err := series.New(cal, dailyTimes(cal, date(1990, 1, 1), len(values)), values)
	require.NoError(t, err)
	m := series.Greater(s, 4)

	agg, err := NewAggregator(s.Times(), cal, Annual(1), StatLongestRun, 0)
	require.NoError(t, err)

	out, err := agg.ApplyMask(m)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, out)
}

func TestAggregator_ApplyAll(t *testing.T) {
	cal := calendar.Standard{}
	times := dailyTimes(cal, date(1990, 1, 1), 10)

	agg, err := NewAggregator(times, cal, Annual(1), StatDayCount, 2)
	require.NoError(t, err)

	masks := [][]bool{
		spellMask(10, 0, 3),
		spellMask(10, 5, 5),
		make([]bool, 10),
	}
	out, err := agg.ApplyAll(masks)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4}, {0}, {0}}, out)

	t.Run("reports the offending point", func(t *testing.T) {
		_, err := agg.ApplyAll([][]bool{make([]bool, 10), make([]bool, 9)})
		require.ErrorIs(t, err, series.ErrLengthMismatch)
		require.Contains(t, err.Error(), "point 1")
	})
}

func TestAggregator_Rejected(t *testing.T) {
	cal := calendar.Standard{}
	times := dailyTimes(cal, date(1990, 1, 1), 10)

	t.Run("windowed statistic needs a window", func(t *testing.T) {
		for _, stat := range []Statistic{StatEventCount, StatDayCount, StatFirstRunEnd, StatLastRunStart} {
			_, err := NewAggregator(times, cal, Annual(1), stat, 0)
			require.ErrorIs(t, err, runlen.ErrWindow, stat.String())
		}
	})

	t.Run("longest run ignores the window", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatLongestRun, -7)
		require.NoError(t, err)
		require.NotNil(t, agg)
	})

	t.Run("unknown statistic", func(t *testing.T) {
		_, err := NewAggregator(times, cal, Annual(1), Statistic(0xff), 1)
		require.ErrorIs(t, err, ErrUnknownStatistic)
	})

	t.Run("bad frequency", func(t *testing.T) {
		_, err := NewAggregator(times, cal, EveryNDays(0), StatLongestRun, 0)
		require.Error(t, err)
	})

	t.Run("mask length mismatch", func(t *testing.T) {
		agg, err := NewAggregator(times, cal, Annual(1), StatLongestRun, 0)
		require.NoError(t, err)

		_, err = agg.Apply(make([]bool, 9))
		require.ErrorIs(t, err, series.ErrLengthMismatch)
	})
}
