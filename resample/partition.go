package resample

import (
	"fmt"

	"github.com/mfortier/climdex/calendar"
)

// Period is one half-open interval [Start, End) produced by Partition.
// Periods of one partitioning are contiguous, ordered and non-overlapping,
// and together cover the whole timeline they were derived from. A period
// that contains no samples is kept (its statistics become missing values),
// so period sequences from timelines with gaps stay aligned across points.
type Period struct {
	Start calendar.Date // first day of the period, inclusive
	End   calendar.Date // first day of the next period, exclusive
	Label string        // anchor label, e.g. "1990", "DJF 1990", "1990-04"

	lo, hi int // sample index bounds [lo, hi) into the source timeline
}

// Bounds returns the half-open sample index range [lo, hi) this period
// covers on the source timeline.
func (p Period) Bounds() (lo, hi int) { return p.lo, p.hi }

// Samples returns the number of timeline samples inside the period.
func (p Period) Samples() int { return p.hi - p.lo }

func (p Period) String() string { return p.Label }

// Partition splits an ordered timeline into contiguous periods according to
// the frequency descriptor. The first period may start before the first
// timestamp when the anchor requires it (e.g. data starting in March under
// an annual January anchor), and the last period extends to its natural
// boundary past the final timestamp.
//
// Period boundaries respect the calendar: a noleap timeline never produces
// a Feb 29 boundary and a 360-day calendar advances in 30-day months.
//
// The timeline must be strictly increasing and every date valid in the
// calendar; violations are contract errors.
func Partition(times []calendar.Date, cal calendar.Calendar, freq Freq) ([]Period, error) {
	if cal == nil {
		return nil, fmt.Errorf("resample: nil calendar")
	}
	if err := freq.Validate(); err != nil {
		return nil, err
	}
	for i, d := range times {
		if err := cal.Validate(d); err != nil {
			return nil, fmt.Errorf("resample: index %d: %w", i, err)
		}
		if i > 0 && times[i-1].Compare(d) >= 0 {
			return nil, fmt.Errorf("resample: timestamps not strictly increasing at index %d (%s then %s)", i, times[i-1], times[i])
		}
	}
	if len(times) == 0 {
		return nil, nil
	}

	var periods []Period
	start := firstPeriodStart(times[0], freq)
	idx := 0
	for idx < len(times) {
		end := nextPeriodStart(cal, start, freq)
		lo := idx
		for idx < len(times) && times[idx].Before(end) {
			idx++
		}
		periods = append(periods, Period{
			Start: start,
			End:   end,
			Label: periodLabel(start, freq),
			lo:    lo,
			hi:    idx,
		})
		start = end
	}

	return periods, nil
}

// firstPeriodStart finds the latest period boundary at or before the first
// timestamp.
func firstPeriodStart(first calendar.Date, freq Freq) calendar.Date {
	switch freq.Kind {
	case FreqAnnual:
		y := first.Year
		if first.Month < freq.Anchor {
			y--
		}

		return calendar.Date{Year: y, Month: freq.Anchor, Day: 1}
	case FreqSeasonal:
		y, m := first.Year, first.Month
		// Walk back to the nearest month congruent to the anchor modulo 3.
		for (m-freq.Anchor)%3 != 0 {
			m--
			if m < 1 {
				m = 12
				y--
			}
		}

		return calendar.Date{Year: y, Month: m, Day: 1}
	case FreqMonthly:
		return calendar.Date{Year: first.Year, Month: first.Month, Day: 1}
	default: // FreqNDay anchors at the data itself
		return first
	}
}

func nextPeriodStart(cal calendar.Calendar, start calendar.Date, freq Freq) calendar.Date {
	switch freq.Kind {
	case FreqAnnual:
		return addMonths(start, 12)
	case FreqSeasonal:
		return addMonths(start, 3)
	case FreqMonthly:
		return addMonths(start, 1)
	default:
		return cal.AddDays(start, freq.Days)
	}
}

// addMonths advances a first-of-month boundary; since the day is always 1 no
// month-length clamping can occur, in any calendar.
func addMonths(d calendar.Date, n int) calendar.Date {
	m := d.Month + n
	y := d.Year + (m-1)/12
	m = (m-1)%12 + 1

	return calendar.Date{Year: y, Month: m, Day: 1}
}

const monthInitials = "JFMAMJJASOND"

func periodLabel(start calendar.Date, freq Freq) string {
	switch freq.Kind {
	case FreqAnnual:
		return fmt.Sprintf("%04d", start.Year)
	case FreqSeasonal:
		season := make([]byte, 3)
		for i := range season {
			season[i] = monthInitials[(start.Month-1+i)%12]
		}

		// Labeled by the year the season starts in: DJF 1990 runs from
		// Dec 1990 through Feb 1991.
		return fmt.Sprintf("%s %04d", season, start.Year)
	case FreqMonthly:
		return fmt.Sprintf("%04d-%02d", start.Year, start.Month)
	default:
		return start.String()
	}
}
