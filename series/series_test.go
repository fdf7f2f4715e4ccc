package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfortier/climdex/calendar"
)

// dailyTimes builds n consecutive daily timestamps starting at start.
func dailyTimes(cal calendar.Calendar, start calendar.Date, n int) []calendar.Date {
	out := make([]calendar.Date, n)
	d := start
	for i := range out {
		out[i] = d
		d = cal.AddDays(d, 1)
	}

	return out
}

func newSeries(t *testing.T, cal calendar.Calendar, start calendar.Date, values []float64) *Series {
	t.Helper()
	s, err := New(cal, dailyTimes(cal, start, len(values)), values)
	require.NoError(t, err)

	return s
}

func TestSeries_New(t *testing.T) {
	cal := calendar.Standard{}

	t.Run("valid series", func(t *testing.T) {
		times := dailyTimes(cal, calendar.Date{Year: 1991, Month: 1, Day: 1}, 5)
		s, err := New(cal, times, []float64{1, 2, 3, 4, 5})
		require.NoError(t, err)
		require.Equal(t, 5, s.Len())
		require.Equal(t, calendar.KindStandard, s.Calendar().Kind())

		d, v := s.At(2)
		require.Equal(t, calendar.Date{Year: 1991, Month: 1, Day: 3}, d)
		require.Equal(t, 3.0, v)
	})

	t.Run("empty series is valid", func(t *testing.T) {
		s, err := New(cal, nil, nil)
		require.NoError(t, err)
		require.Equal(t, 0, s.Len())
	})

	t.Run("nil calendar", func(t *testing.T) {
		_, err := New(nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		times := dailyTimes(cal, calendar.Date{Year: 1991, Month: 1, Day: 1}, 3)
		_, err := New(cal, times, []float64{1, 2})
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("timestamps not increasing", func(t *testing.T) {
		times := []calendar.Date{
			{Year: 1991, Month: 1, Day: 2},
			{Year: 1991, Month: 1, Day: 2},
		}
		_, err := New(cal, times, []float64{1, 2})
		require.ErrorIs(t, err, ErrNotIncreasing)
	})

	t.Run("date invalid in calendar", func(t *testing.T) {
		times := []calendar.Date{{Year: 1991, Month: 2, Day: 29}}
		_, err := New(cal, times, []float64{1})
		require.Error(t, err)
	})
}

func TestSeries_Map(t *testing.T) {
	cal := calendar.Standard{}
	s := newSeries(t, cal, calendar.Date{Year: 1991, Month: 1, Day: 1}, []float64{1, 2, 3})

	doubled := Map(s, func(v float64) float64 { return v * 2 })
	require.Equal(t, []float64{2, 4, 6}, doubled.Values())
	require.Equal(t, s.Times(), doubled.Times())

	// Source is untouched.
	require.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestSeries_Combine(t *testing.T) {
	cal := calendar.Standard{}
	start := calendar.Date{Year: 1991, Month: 1, Day: 1}

	t.Run("element-wise on shared axis", func(t *testing.T) {
		a := newSeries(t, cal, start, []float64{1, 2, 3})
		b := newSeries(t, cal, start, []float64{10, 20, 30})

		sum, err := Combine(a, b, func(x, y float64) float64 { return x + y })
		require.NoError(t, err)
		require.Equal(t, []float64{11, 22, 33}, sum.Values())
	})

	t.Run("calendar mismatch", func(t *testing.T) {
		a := newSeries(t, cal, start, []float64{1, 2, 3})
		b := newSeries(t, calendar.NoLeap{}, start, []float64{1, 2, 3})

		_, err := Combine(a, b, func(x, y float64) float64 { return x })
		require.ErrorIs(t, err, ErrCalendarMismatch)
	})

	t.Run("length mismatch", func(t *testing.T) {
		a := newSeries(t, cal, start, []float64{1, 2, 3})
		b := newSeries(t, cal, start, []float64{1, 2})

		_, err := Combine(a, b, func(x, y float64) float64 { return x })
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("diverging axes", func(t *testing.T) {
		a := newSeries(t, cal, start, []float64{1, 2, 3})
		b := newSeries(t, cal, calendar.Date{Year: 1991, Month: 1, Day: 2}, []float64{1, 2, 3})

		_, err := Combine(a, b, func(x, y float64) float64 { return x })
		require.Error(t, err)
	})
}

func TestSeries_CombinePropagatesNaN(t *testing.T) {
	cal := calendar.Standard{}
	start := calendar.Date{Year: 1991, Month: 1, Day: 1}
	a := newSeries(t, cal, start, []float64{1, math.NaN()})
	b := newSeries(t, cal, start, []float64{2, 2})

	sum, err := Combine(a, b, func(x, y float64) float64 { return x + y })
	require.NoError(t, err)
	require.Equal(t, 3.0, sum.Values()[0])
	require.True(t, math.IsNaN(sum.Values()[1]))
}
