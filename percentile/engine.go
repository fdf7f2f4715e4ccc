package percentile

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/internal/options"
	"github.com/mfortier/climdex/series"
)

const (
	defaultWindow   = 5
	defaultQuantile = 0.1
)

var (
	// ErrWindow is returned when the pooling window is not a positive odd
	// number of days. The window must be centered, so even widths are
	// rejected rather than rounded.
	ErrWindow = errors.New("percentile: window must be a positive odd day count")

	// ErrQuantile is returned when the requested quantile lies outside the
	// open interval (0, 1).
	ErrQuantile = errors.New("percentile: quantile must lie in (0, 1)")
)

// Engine builds climatological day-of-year quantile tables.
//
// For every day-of-year d it pools the calibration values whose day-of-year
// lies within half a window of d — circularly, so the pool for Jan 1 reaches
// back across the Dec/Jan boundary — across all calibration years, then takes
// the configured quantile of the pooled set.
//
// An Engine is immutable after construction and safe for concurrent Build
// calls; one engine is typically shared across all spatial points.
type Engine struct {
	cal    calendar.Calendar
	window int
	per    float64
}

// Option configures an Engine.
type Option = options.Option[*Engine]

// WithWindow sets the centered pooling window width in days. Must be odd and
// at least 1; the default is 5.
func WithWindow(w int) Option {
	return options.New(func(e *Engine) error {
		if w < 1 || w%2 == 0 {
			return fmt.Errorf("%w, got %d", ErrWindow, w)
		}
		e.window = w

		return nil
	})
}

// WithQuantile sets the quantile to estimate, in the open interval (0, 1).
// The default is 0.1, the 10th percentile.
func WithQuantile(per float64) Option {
	return options.New(func(e *Engine) error {
		if per <= 0 || per >= 1 || math.IsNaN(per) {
			return fmt.Errorf("%w, got %v", ErrQuantile, per)
		}
		e.per = per

		return nil
	})
}

// NewEngine creates a percentile engine for the given calendar. All
// configuration errors are reported here; Build never fails on
// configuration.
func NewEngine(cal calendar.Calendar, opts ...Option) (*Engine, error) {
	if cal == nil {
		return nil, errors.New("percentile: nil calendar")
	}

	e := &Engine{cal: cal, window: defaultWindow, per: defaultQuantile}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Window returns the configured pooling window width in days.
func (e *Engine) Window() int { return e.window }

// Quantile returns the configured quantile.
func (e *Engine) Quantile() float64 { return e.per }

// Build computes the day-of-year quantile table for one spatial point from
// its calibration series.
//
// The calibration series must be declared in the engine's calendar. NaN
// samples are treated as missing and excluded from the pools; a day-of-year
// whose pool ends up empty gets a NaN table entry rather than failing the
// whole build. Repeated builds on identical input produce bit-identical
// tables.
//
// Circular wrap policy: each sample spreads into the window days around its
// own ordinal day-of-year, wrapping at its own year's length. In leap-capable
// calendars day-of-year 366 therefore pools only values observed at the end
// of actual leap years.
func (e *Engine) Build(s *series.Series) (*Table, error) {
	if s.Calendar().Kind() != e.cal.Kind() {
		return nil, fmt.Errorf("%w: series is %s, engine is %s", series.ErrCalendarMismatch, s.Calendar().Name(), e.cal.Name())
	}

	size := e.cal.MaxDaysInYear()
	pools := make([][]float64, size)

	half := e.window / 2
	times := s.Times()
	values := s.Values()
	for i, d := range times {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		doy := e.cal.DayOfYear(d)
		yearLen := e.cal.DaysInYear(d.Year)
		for off := -half; off <= half; off++ {
			target := doy + off
			switch {
			case target < 1:
				target += yearLen
			case target > yearLen:
				target -= yearLen
			}
			pools[target-1] = append(pools[target-1], v)
		}
	}

	entries := make([]float64, size)
	for i, pool := range pools {
		if len(pool) == 0 {
			entries[i] = math.NaN()
			continue
		}
		sort.Float64s(pool)
		entries[i] = stat.Quantile(e.per, stat.LinInterp, pool, nil)
	}

	return &Table{
		kind:    e.cal.Kind(),
		window:  e.window,
		per:     e.per,
		entries: entries,
	}, nil
}
