package resample

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FreqKind is the closed set of supported resampling frequency classes.
type FreqKind uint8

const (
	FreqAnnual   FreqKind = 0x1 // FreqAnnual is one period per year, starting at an anchor month.
	FreqSeasonal FreqKind = 0x2 // FreqSeasonal is one period per 3-month season, starting at an anchor month.
	FreqMonthly  FreqKind = 0x3 // FreqMonthly is one period per calendar month.
	FreqNDay     FreqKind = 0x4 // FreqNDay is fixed-length periods of N days, anchored at the first timestamp.
)

func (k FreqKind) String() string {
	switch k {
	case FreqAnnual:
		return "annual"
	case FreqSeasonal:
		return "seasonal"
	case FreqMonthly:
		return "monthly"
	case FreqNDay:
		return "n-day"
	default:
		return "unknown"
	}
}

// ErrUnknownFreq is returned for malformed or unsupported frequency
// descriptors. Frequencies are rejected at configuration time, never during
// computation.
var ErrUnknownFreq = errors.New("resample: unknown frequency")

// Freq declares a resampling frequency: a frequency class plus its anchor.
// Construct one with Annual, Seasonal, Monthly or EveryNDays, or parse the
// compact string grammar with ParseFreq.
type Freq struct {
	Kind   FreqKind
	Anchor int // start month (1-12) for FreqAnnual and FreqSeasonal
	Days   int // period length for FreqNDay
}

// Annual returns an annual frequency with periods starting on the first day
// of the anchor month. Use anchor 1 for calendar years, 7 for July-to-June
// hydrological years, and so on.
func Annual(anchorMonth int) Freq {
	return Freq{Kind: FreqAnnual, Anchor: anchorMonth}
}

// Seasonal returns a 3-month seasonal frequency anchored at the given start
// month. Anchor 12 yields the climatological DJF/MAM/JJA/SON seasons.
func Seasonal(anchorMonth int) Freq {
	return Freq{Kind: FreqSeasonal, Anchor: anchorMonth}
}

// Monthly returns a calendar-month frequency.
func Monthly() Freq {
	return Freq{Kind: FreqMonthly}
}

// EveryNDays returns a fixed-length frequency of n-day periods anchored at
// the first timestamp of the timeline.
func EveryNDays(n int) Freq {
	return Freq{Kind: FreqNDay, Days: n}
}

// Validate checks the descriptor once, before any computation starts.
func (f Freq) Validate() error {
	switch f.Kind {
	case FreqAnnual, FreqSeasonal:
		if f.Anchor < 1 || f.Anchor > 12 {
			return fmt.Errorf("resample: %s anchor month %d out of range 1-12", f.Kind, f.Anchor)
		}
	case FreqMonthly:
	case FreqNDay:
		if f.Days < 1 {
			return fmt.Errorf("resample: n-day period length must be >= 1, got %d", f.Days)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownFreq, f.Kind)
	}

	return nil
}

func (f Freq) String() string {
	switch f.Kind {
	case FreqAnnual:
		return "YS-" + monthCode(f.Anchor)
	case FreqSeasonal:
		return "QS-" + monthCode(f.Anchor)
	case FreqMonthly:
		return "MS"
	case FreqNDay:
		return strconv.Itoa(f.Days) + "D"
	default:
		return "unknown"
	}
}

var monthCodes = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

func monthCode(m int) string {
	if m < 1 || m > 12 {
		return "???"
	}

	return monthCodes[m-1]
}

func parseMonthCode(code string) (int, bool) {
	for i, c := range monthCodes {
		if c == code {
			return i + 1, true
		}
	}

	return 0, false
}

// ParseFreq accepts the compact offset-alias grammar used by external
// callers: "YS" (annual, January), "YS-JUL" or "AS-JUL" (annual anchored at
// July), "QS-DEC" (seasons starting in December), "MS" (monthly), "7D"
// (7-day periods). Anything else is rejected with ErrUnknownFreq.
func ParseFreq(s string) (Freq, error) {
	switch s {
	case "YS", "AS":
		return Annual(1), nil
	case "QS":
		return Seasonal(1), nil
	case "MS":
		return Monthly(), nil
	}

	if base, code, ok := strings.Cut(s, "-"); ok {
		month, valid := parseMonthCode(code)
		if valid {
			switch base {
			case "YS", "AS":
				return Annual(month), nil
			case "QS":
				return Seasonal(month), nil
			}
		}

		return Freq{}, fmt.Errorf("%w: %q", ErrUnknownFreq, s)
	}

	if n, ok := strings.CutSuffix(s, "D"); ok {
		days, err := strconv.Atoi(n)
		if err == nil && days >= 1 {
			return EveryNDays(days), nil
		}
	}

	return Freq{}, fmt.Errorf("%w: %q", ErrUnknownFreq, s)
}
