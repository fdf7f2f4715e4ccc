package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/mfortier/climdex/calendar"
	"github.com/mfortier/climdex/runlen"
	"github.com/mfortier/climdex/series"
)

// Statistic is the closed set of run-length statistics an Aggregator can
// compute per period.
type Statistic uint8

const (
	StatLongestRun   Statistic = 0x1 // StatLongestRun is the longest spell length in the period.
	StatEventCount   Statistic = 0x2 // StatEventCount is the number of spells of at least the window length.
	StatDayCount     Statistic = 0x3 // StatDayCount is the number of days inside qualifying spells.
	StatFirstRunEnd  Statistic = 0x4 // StatFirstRunEnd is the global index where the first qualifying spell completes.
	StatLastRunStart Statistic = 0x5 // StatLastRunStart is the global index where the last qualifying spell begins.
)

func (s Statistic) String() string {
	switch s {
	case StatLongestRun:
		return "longest-run"
	case StatEventCount:
		return "event-count"
	case StatDayCount:
		return "day-count"
	case StatFirstRunEnd:
		return "first-run-end"
	case StatLastRunStart:
		return "last-run-start"
	default:
		return "unknown"
	}
}

// ErrUnknownStatistic is returned for statistics outside the closed set.
var ErrUnknownStatistic = errors.New("resample: unknown statistic")

// Aggregator applies one run-length statistic to each period of a partitioned
// timeline, independently per spatial point.
//
// Boundary policy: runs are truncated at period boundaries. A spell that
// starts in one period and continues into the next is judged as two
// independent sub-spells, each qualifying only if its truncated length still
// meets the window. This under-counts straddling spells relative to a whole-
// timeline analysis; published index definitions disagree on the correct
// behavior, so the simple truncation rule is kept and documented rather than
// stitched across boundaries.
//
// An Aggregator is configured once and is safe for concurrent Apply calls:
// it holds no per-call state, so an external scheduler may fan out spatial
// points across goroutines freely.
type Aggregator struct {
	periods []Period
	stat    Statistic
	window  int
	samples int
}

// NewAggregator partitions the timeline once and prepares the statistic.
//
// window is the qualifying spell length for the windowed statistics
// (EventCount, DayCount, FirstRunEnd, LastRunStart) and must be >= 1 for
// them; StatLongestRun takes no window and ignores the argument. All
// configuration errors surface here, before any data is touched.
func NewAggregator(times []calendar.Date, cal calendar.Calendar, freq Freq, stat Statistic, window int) (*Aggregator, error) {
	switch stat {
	case StatLongestRun:
		window = 0
	case StatEventCount, StatDayCount, StatFirstRunEnd, StatLastRunStart:
		if window < 1 {
			return nil, fmt.Errorf("%w, got %d for %s", runlen.ErrWindow, window, stat)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatistic, stat)
	}

	periods, err := Partition(times, cal, freq)
	if err != nil {
		return nil, err
	}

	return &Aggregator{
		periods: periods,
		stat:    stat,
		window:  window,
		samples: len(times),
	}, nil
}

// Periods returns the partitioning the aggregator was built on, aligned
// index-for-index with the output of Apply.
func (a *Aggregator) Periods() []Period { return a.periods }

// Apply computes the statistic for one spatial point's exceedance mask,
// returning one value per period. The mask must have exactly one sample per
// timeline timestamp.
//
// A period with no samples yields NaN. For the position statistics the
// result is the index on the global time axis (not relative to the period),
// and NaN when no spell in the period qualifies.
func (a *Aggregator) Apply(mask []bool) ([]float64, error) {
	if len(mask) != a.samples {
		return nil, fmt.Errorf("%w: mask has %d samples, timeline has %d", series.ErrLengthMismatch, len(mask), a.samples)
	}

	out := make([]float64, len(a.periods))
	for i, p := range a.periods {
		lo, hi := p.Bounds()
		out[i] = a.statistic(mask[lo:hi], lo)
	}

	return out, nil
}

// ApplyMask is Apply for a series.Mask.
func (a *Aggregator) ApplyMask(m *series.Mask) ([]float64, error) {
	return a.Apply(m.Values())
}

// ApplyAll maps Apply over many spatial points. Points are independent: no
// point's result depends on another, and a caller that wants parallelism can
// equally well shard the points itself and call Apply from several
// goroutines.
func (a *Aggregator) ApplyAll(masks [][]bool) ([][]float64, error) {
	out := make([][]float64, len(masks))
	for i, mask := range masks {
		vals, err := a.Apply(mask)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = vals
	}

	return out, nil
}

// statistic evaluates the configured statistic on one period's mask slice.
// offset is the slice's position on the global time axis, used to globalize
// run positions.
func (a *Aggregator) statistic(mask []bool, offset int) float64 {
	if len(mask) == 0 {
		return math.NaN()
	}

	runs := runlen.Analyze(mask)

	// Window validity was established at construction; the runlen errors
	// cannot fire here.
	switch a.stat {
	case StatLongestRun:
		return float64(runlen.LongestRun(runs))
	case StatEventCount:
		n, _ := runlen.EventCount(runs, a.window)
		return float64(n)
	case StatDayCount:
		n, _ := runlen.DayCount(runs, a.window)
		return float64(n)
	case StatFirstRunEnd:
		pos, _ := runlen.FirstRunEnd(runs, a.window)
		return globalize(pos, offset)
	default: // StatLastRunStart
		pos, _ := runlen.LastRunStart(runs, a.window)
		return globalize(pos, offset)
	}
}

func globalize(pos, offset int) float64 {
	if pos == runlen.NotFound {
		return math.NaN()
	}

	return float64(offset + pos)
}
