package series

import (
	"errors"
	"fmt"

	"github.com/mfortier/climdex/calendar"
)

var (
	// ErrLengthMismatch is returned when a time axis and a value slice, or two
	// series that must share one axis, differ in length.
	ErrLengthMismatch = errors.New("series: length mismatch")

	// ErrNotIncreasing is returned when timestamps are not strictly increasing.
	ErrNotIncreasing = errors.New("series: timestamps not strictly increasing")

	// ErrCalendarMismatch is returned when two series built on different
	// calendar systems are combined.
	ErrCalendarMismatch = errors.New("series: calendar mismatch")
)

// Series is an ordered sequence of (date, value) pairs under one calendar.
//
// The invariants (matching lengths, strictly increasing dates, every date
// valid in the calendar) are checked once by New; after construction a Series
// is read-only and safe for concurrent use. The engines in runlen, resample
// and percentile never mutate a Series.
type Series struct {
	times  []calendar.Date
	values []float64
	cal    calendar.Calendar
}

// New builds a Series after validating its invariants. The input slices are
// retained, not copied; callers must not modify them afterwards.
func New(cal calendar.Calendar, times []calendar.Date, values []float64) (*Series, error) {
	if cal == nil {
		return nil, errors.New("series: nil calendar")
	}
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps vs %d values", ErrLengthMismatch, len(times), len(values))
	}
	if err := checkAxis(cal, times); err != nil {
		return nil, err
	}

	return &Series{times: times, values: values, cal: cal}, nil
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.times) }

// Calendar returns the calendar the time axis is declared in.
func (s *Series) Calendar() calendar.Calendar { return s.cal }

// Times returns the time axis. The returned slice is shared; treat it as
// read-only.
func (s *Series) Times() []calendar.Date { return s.times }

// Values returns the sample values. The returned slice is shared; treat it
// as read-only.
func (s *Series) Values() []float64 { return s.values }

// At returns the i-th (date, value) pair.
func (s *Series) At(i int) (calendar.Date, float64) {
	return s.times[i], s.values[i]
}

// Map returns a new Series on the same time axis with f applied to every
// value. The time axis is shared with the receiver.
func Map(s *Series, f func(float64) float64) *Series {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = f(v)
	}

	return &Series{times: s.times, values: out, cal: s.cal}
}

// Combine returns a new Series with f applied element-wise to two series
// sharing the same time axis. The axes must have equal length and calendar
// kind; sharing is checked structurally, date by date.
func Combine(a, b *Series, f func(x, y float64) float64) (*Series, error) {
	if err := sameAxis(a, b); err != nil {
		return nil, err
	}

	out := make([]float64, len(a.values))
	for i := range a.values {
		out[i] = f(a.values[i], b.values[i])
	}

	return &Series{times: a.times, values: out, cal: a.cal}, nil
}

func sameAxis(a, b *Series) error {
	if a.cal.Kind() != b.cal.Kind() {
		return fmt.Errorf("%w: %s vs %s", ErrCalendarMismatch, a.cal.Name(), b.cal.Name())
	}
	if len(a.times) != len(b.times) {
		return fmt.Errorf("%w: %d vs %d samples", ErrLengthMismatch, len(a.times), len(b.times))
	}
	for i := range a.times {
		if a.times[i] != b.times[i] {
			return fmt.Errorf("series: time axes diverge at index %d: %s vs %s", i, a.times[i], b.times[i])
		}
	}

	return nil
}

func checkAxis(cal calendar.Calendar, times []calendar.Date) error {
	for i, d := range times {
		if err := cal.Validate(d); err != nil {
			return fmt.Errorf("series: index %d: %w", i, err)
		}
		if i > 0 && times[i-1].Compare(d) >= 0 {
			return fmt.Errorf("%w: %s followed by %s at index %d", ErrNotIncreasing, times[i-1], d, i)
		}
	}

	return nil
}
