package percentile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/series"
)

func rampEntries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

func TestTable_NewTable(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table, err := NewTable(calendar.KindNoLeap, 5, 0.1, rampEntries(365))
		require.NoError(t, err)
		require.Equal(t, calendar.KindNoLeap, table.CalendarKind())
		require.Equal(t, 5, table.Window())
		require.Equal(t, 0.1, table.Quantile())
		require.Equal(t, 365, table.Size())
	})

	t.Run("unknown calendar kind", func(t *testing.T) {
		_, err := NewTable(calendar.Kind(0xff), 5, 0.1, rampEntries(365))
		require.ErrorIs(t, err, calendar.ErrUnknownCalendar)
	})

	t.Run("bad window", func(t *testing.T) {
		_, err := NewTable(calendar.KindNoLeap, 4, 0.1, rampEntries(365))
		require.ErrorIs(t, err, ErrWindow)
		_, err = NewTable(calendar.KindNoLeap, 0, 0.1, rampEntries(365))
		require.ErrorIs(t, err, ErrWindow)
	})

	t.Run("bad quantile", func(t *testing.T) {
		_, err := NewTable(calendar.KindNoLeap, 5, 1.0, rampEntries(365))
		require.ErrorIs(t, err, ErrQuantile)
	})

	t.Run("entry count must match calendar", func(t *testing.T) {
		_, err := NewTable(calendar.KindStandard, 5, 0.1, rampEntries(365))
		require.Error(t, err)
		_, err = NewTable(calendar.KindDay360, 5, 0.1, rampEntries(365))
		require.Error(t, err)
	})
}

func TestTable_Value(t *testing.T) {
	table, err := NewTable(calendar.KindNoLeap, 5, 0.1, rampEntries(365))
	require.NoError(t, err)

	require.Equal(t, 1.0, table.Value(1))
	require.Equal(t, 365.0, table.Value(365))
	require.True(t, math.IsNaN(table.Value(0)))
	require.True(t, math.IsNaN(table.Value(366)))
}

func TestTable_Broadcast(t *testing.T) {
	cal := calendar.NoLeap{}
	table, err := NewTable(calendar.KindNoLeap, 5, 0.1, rampEntries(365))
	require.NoError(t, err)

	t.Run("threshold per timestamp", func(t *testing.T) {
		times := []calendar.Date{
			{Year: 1991, Month: 1, Day: 1},
			{Year: 1991, Month: 3, Day: 1},
			{Year: 1992, Month: 1, Day: 1}, // same day-of-year as the first
			{Year: 1992, Month: 12, Day: 31},
		}
		out, err := table.Broadcast(times, cal)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 60, 1, 365}, out)
	})

	t.Run("calendar kind mismatch", func(t *testing.T) {
		times := []calendar.Date{{Year: 1991, Month: 1, Day: 1}}
		_, err := table.Broadcast(times, calendar.Standard{})
		require.ErrorIs(t, err, series.ErrCalendarMismatch)
	})

	t.Run("nil calendar", func(t *testing.T) {
		_, err := table.Broadcast(nil, nil)
		require.Error(t, err)
	})

	t.Run("date invalid in calendar", func(t *testing.T) {
		times := []calendar.Date{{Year: 1992, Month: 2, Day: 29}}
		_, err := table.Broadcast(times, cal)
		require.Error(t, err)
	})
}
