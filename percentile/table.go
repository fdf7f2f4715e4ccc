package percentile

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/series"
)

// Table is a climatology: one quantile value per day-of-year for one spatial
// point, independent of any particular year. Entries for days whose pooled
// calibration set was empty are NaN.
//
// A Table remembers the calendar kind, window and quantile it was built
// with, so it can be persisted (see the blob package) and later broadcast
// against any time axis sharing the same calendar.
type Table struct {
	kind    calendar.Kind
	window  int
	per     float64
	entries []float64 // indexed by day-of-year minus one
}

// NewTable reassembles a table from its parts, validating them the same way
// the Engine would. It is primarily used by the blob decoder.
func NewTable(kind calendar.Kind, window int, per float64, entries []float64) (*Table, error) {
	cal, err := calendar.FromKind(kind)
	if err != nil {
		return nil, err
	}
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("%w, got %d", ErrWindow, window)
	}
	if per <= 0 || per >= 1 || math.IsNaN(per) {
		return nil, fmt.Errorf("%w, got %v", ErrQuantile, per)
	}
	if len(entries) != cal.MaxDaysInYear() {
		return nil, fmt.Errorf("percentile: table has %d entries, %s calendar needs %d", len(entries), cal.Name(), cal.MaxDaysInYear())
	}

	return &Table{kind: kind, window: window, per: per, entries: entries}, nil
}

// CalendarKind returns the calendar system the table's day numbering uses.
func (t *Table) CalendarKind() calendar.Kind { return t.kind }

// Window returns the pooling window the table was built with.
func (t *Table) Window() int { return t.window }

// Quantile returns the quantile the table estimates.
func (t *Table) Quantile() float64 { return t.per }

// Size returns the number of day-of-year entries.
func (t *Table) Size() int { return len(t.entries) }

// Entries returns the raw per-day values, indexed by day-of-year minus one.
// The returned slice is shared; treat it as read-only.
func (t *Table) Entries() []float64 { return t.entries }

// Value returns the table entry for a 1-based day-of-year, or NaN when the
// day is out of range or had no calibration data.
func (t *Table) Value(doy int) float64 {
	if doy < 1 || doy > len(t.entries) {
		return math.NaN()
	}

	return t.entries[doy-1]
}

// Broadcast maps the climatology back onto a time axis: one threshold per
// timestamp, looked up by the timestamp's day-of-year. The axis must be
// declared in the same calendar kind the table was built with.
//
// The result is typically fed to series.GreaterElem or series.LessElem to
// build the exceedance mask for percentile-based indicators.
func (t *Table) Broadcast(times []calendar.Date, cal calendar.Calendar) ([]float64, error) {
	if cal == nil {
		return nil, errors.New("percentile: nil calendar")
	}
	if cal.Kind() != t.kind {
		return nil, fmt.Errorf("%w: axis is %s, table is %s", series.ErrCalendarMismatch, cal.Kind(), t.kind)
	}

	out := make([]float64, len(times))
	for i, d := range times {
		if err := cal.Validate(d); err != nil {
			return nil, fmt.Errorf("percentile: index %d: %w", i, err)
		}
		out[i] = t.Value(cal.DayOfYear(d))
	}

	return out, nil
}
