package series

import (
	"fmt"
	"math"

	"github.com/mfortier/climdex/calendar"
)

// Mask is a boolean exceedance series: true where a condition held on the
// source series. A Mask always shares the shape and calendar of the series
// it was derived from. Masks are transient values consumed by the run-length
// pipeline; they are never persisted.
//
// A NaN sample never satisfies any condition, so masks derived from sparse
// data are false at the missing positions.
type Mask struct {
	times  []calendar.Date
	values []bool
	cal    calendar.Calendar
}

// Len returns the number of samples.
func (m *Mask) Len() int { return len(m.values) }

// Calendar returns the calendar of the underlying time axis.
func (m *Mask) Calendar() calendar.Calendar { return m.cal }

// Times returns the shared time axis; treat it as read-only.
func (m *Mask) Times() []calendar.Date { return m.times }

// Values returns the boolean samples; treat them as read-only.
func (m *Mask) Values() []bool { return m.values }

// Greater returns the mask of samples strictly above thresh.
func Greater(s *Series, thresh float64) *Mask {
	return compareScalar(s, func(v float64) bool { return v > thresh })
}

// GreaterEqual returns the mask of samples at or above thresh.
func GreaterEqual(s *Series, thresh float64) *Mask {
	return compareScalar(s, func(v float64) bool { return v >= thresh })
}

// Less returns the mask of samples strictly below thresh.
func Less(s *Series, thresh float64) *Mask {
	return compareScalar(s, func(v float64) bool { return v < thresh })
}

// LessEqual returns the mask of samples at or below thresh.
func LessEqual(s *Series, thresh float64) *Mask {
	return compareScalar(s, func(v float64) bool { return v <= thresh })
}

// GreaterElem returns the mask of samples strictly above a per-sample
// threshold, typically a day-of-year percentile table broadcast onto the
// series' time axis. A NaN threshold marks the sample false.
func GreaterElem(s *Series, thresh []float64) (*Mask, error) {
	return compareElem(s, thresh, func(v, t float64) bool { return v > t })
}

// LessElem returns the mask of samples strictly below a per-sample threshold.
// A NaN threshold marks the sample false.
func LessElem(s *Series, thresh []float64) (*Mask, error) {
	return compareElem(s, thresh, func(v, t float64) bool { return v < t })
}

// And returns the element-wise conjunction of two masks sharing one axis.
func And(a, b *Mask) (*Mask, error) {
	if a.cal.Kind() != b.cal.Kind() {
		return nil, fmt.Errorf("%w: %s vs %s", ErrCalendarMismatch, a.cal.Name(), b.cal.Name())
	}
	if len(a.values) != len(b.values) {
		return nil, fmt.Errorf("%w: %d vs %d samples", ErrLengthMismatch, len(a.values), len(b.values))
	}

	out := make([]bool, len(a.values))
	for i := range a.values {
		out[i] = a.values[i] && b.values[i]
	}

	return &Mask{times: a.times, values: out, cal: a.cal}, nil
}

func compareScalar(s *Series, cond func(float64) bool) *Mask {
	out := make([]bool, len(s.values))
	for i, v := range s.values {
		out[i] = !math.IsNaN(v) && cond(v)
	}

	return &Mask{times: s.times, values: out, cal: s.cal}
}

func compareElem(s *Series, thresh []float64, cond func(v, t float64) bool) (*Mask, error) {
	if len(thresh) != len(s.values) {
		return nil, fmt.Errorf("%w: %d thresholds vs %d samples", ErrLengthMismatch, len(thresh), len(s.values))
	}

	out := make([]bool, len(s.values))
	for i, v := range s.values {
		out[i] = !math.IsNaN(v) && !math.IsNaN(thresh[i]) && cond(v, thresh[i])
	}

	return &Mask{times: s.times, values: out, cal: s.cal}, nil
}
