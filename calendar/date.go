package calendar

import "fmt"

// Date is a calendar date without any time-of-day component.
//
// Date deliberately does not use time.Time: non-standard climate model
// calendars (360-day, no-leap) contain dates that time.Time cannot represent,
// and time.Time silently normalizes invalid dates instead of rejecting them.
// A Date is only meaningful together with the Calendar it was validated
// against.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-based
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o. Ordering is purely lexicographic on (Year, Month, Day) and is the
// same in every calendar.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// String returns the date in ISO-like YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
