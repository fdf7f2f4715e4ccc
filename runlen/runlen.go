package runlen

import (
	"errors"
	"fmt"
)

// NotFound is the sentinel returned by position statistics when no run
// qualifies. Callers propagate it as a missing value, not as an error.
const NotFound = -1

// ErrWindow is returned when a windowed statistic is asked for a qualifying
// length below 1. A window of zero or less is a contract violation, never
// silently coerced.
var ErrWindow = errors.New("runlen: window must be >= 1")

// Run is one maximal contiguous stretch of true samples in a boolean
// sequence. Start is the 0-based index of its first sample and Length is at
// least 1. Runs produced by Analyze are ordered by Start, disjoint, and
// separated by at least one false sample; two adjacent stretches of true are
// by definition the same run.
type Run struct {
	Start  int
	Length int
}

// End returns the 0-based index of the run's last sample.
func (r Run) End() int { return r.Start + r.Length - 1 }

func (r Run) String() string {
	return fmt.Sprintf("[%d..%d]", r.Start, r.End())
}

// Analyze scans a boolean sequence once, left to right, and returns its
// maximal runs of true in order of appearance.
//
// The scan is O(n) time and O(k) space for k runs. Empty and all-false
// input both yield a nil slice; neither is an error.
func Analyze(mask []bool) []Run {
	var runs []Run
	start := NotFound

	for i, v := range mask {
		switch {
		case v && start == NotFound:
			start = i
		case !v && start != NotFound:
			runs = append(runs, Run{Start: start, Length: i - start})
			start = NotFound
		}
	}
	if start != NotFound {
		runs = append(runs, Run{Start: start, Length: len(mask) - start})
	}

	return runs
}

// LongestRun returns the length of the longest run, or 0 when there are no
// runs. For a sequence of length n the result is n iff every sample is true.
func LongestRun(runs []Run) int {
	longest := 0
	for _, r := range runs {
		if r.Length > longest {
			longest = r.Length
		}
	}

	return longest
}

// EventCount returns the number of runs at least window samples long: the
// number of qualifying spells. It counts occurrences, not days; see DayCount
// for the latter. EventCount is non-increasing in window for fixed input.
func EventCount(runs []Run, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("%w, got %d", ErrWindow, window)
	}

	count := 0
	for _, r := range runs {
		if r.Length >= window {
			count++
		}
	}

	return count, nil
}

// DayCount returns the total number of samples inside runs at least window
// samples long: the number of days that belong to a qualifying spell. A true
// sample inside a shorter run contributes nothing. With window = 1 the result
// is exactly the number of true samples in the sequence.
func DayCount(runs []Run, window int) (int, error) {
	if window < 1 {
		return 0, fmt.Errorf("%w, got %d", ErrWindow, window)
	}

	days := 0
	for _, r := range runs {
		if r.Length >= window {
			days += r.Length
		}
	}

	return days, nil
}

// FirstRunEnd returns the 0-based index of the last sample of the first run
// at least window samples long, or NotFound when no run qualifies. Used for
// "date of first occurrence" indicators, where the event is considered
// complete only once the full spell has been observed.
func FirstRunEnd(runs []Run, window int) (int, error) {
	if window < 1 {
		return NotFound, fmt.Errorf("%w, got %d", ErrWindow, window)
	}

	for _, r := range runs {
		if r.Length >= window {
			return r.End(), nil
		}
	}

	return NotFound, nil
}

// LastRunStart returns the 0-based index of the first sample of the last run
// at least window samples long, or NotFound when no run qualifies. Used for
// "date of last occurrence" indicators.
func LastRunStart(runs []Run, window int) (int, error) {
	if window < 1 {
		return NotFound, fmt.Errorf("%w, got %d", ErrWindow, window)
	}

	for i := len(runs) - 1; i >= 0; i-- {
		if runs[i].Length >= window {
			return runs[i].Start, nil
		}
	}

	return NotFound, nil
}
