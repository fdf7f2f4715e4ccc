package calendar

import "fmt"

// monthDays holds non-leap month lengths, indexed by month-1.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Standard is the proleptic Gregorian calendar with the usual leap-year rules.
type Standard struct{}

var _ Calendar = Standard{}

func (Standard) Kind() Kind   { return KindStandard }
func (Standard) Name() string { return "standard" }

func (Standard) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (c Standard) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && c.IsLeapYear(year) {
		return 29
	}

	return monthDays[month-1]
}

func (c Standard) DaysInYear(year int) int {
	if c.IsLeapYear(year) {
		return 366
	}

	return 365
}

func (Standard) MaxDaysInYear() int { return 366 }

func (c Standard) DayOfYear(d Date) int  { return dayOfYear(c, d) }
func (c Standard) Validate(d Date) error { return validate(c, d) }
func (c Standard) AddDays(d Date, n int) Date {
	return addDays(c, d, n)
}

// NoLeap is a 365-day model calendar: February always has 28 days.
type NoLeap struct{}

var _ Calendar = NoLeap{}

func (NoLeap) Kind() Kind              { return KindNoLeap }
func (NoLeap) Name() string            { return "noleap" }
func (NoLeap) IsLeapYear(int) bool     { return false }
func (NoLeap) DaysInYear(int) int      { return 365 }
func (NoLeap) MaxDaysInYear() int      { return 365 }
func (c NoLeap) DayOfYear(d Date) int  { return dayOfYear(c, d) }
func (c NoLeap) Validate(d Date) error { return validate(c, d) }

func (NoLeap) DaysInMonth(_, month int) int {
	if month < 1 || month > 12 {
		return 0
	}

	return monthDays[month-1]
}

func (c NoLeap) AddDays(d Date, n int) Date {
	return addDays(c, d, n)
}

// Day360 is a 360-day model calendar: twelve months of 30 days each.
type Day360 struct{}

var _ Calendar = Day360{}

func (Day360) Kind() Kind          { return KindDay360 }
func (Day360) Name() string        { return "360_day" }
func (Day360) IsLeapYear(int) bool { return false }
func (Day360) DaysInYear(int) int  { return 360 }
func (Day360) MaxDaysInYear() int  { return 360 }

func (Day360) DaysInMonth(_, month int) int {
	if month < 1 || month > 12 {
		return 0
	}

	return 30
}

func (c Day360) DayOfYear(d Date) int  { return (d.Month-1)*30 + d.Day }
func (c Day360) Validate(d Date) error { return validate(c, d) }
func (c Day360) AddDays(d Date, n int) Date {
	return addDays(c, d, n)
}

// dayOfYear computes the 1-based ordinal day by summing the lengths of the
// preceding months. The date is assumed valid.
func dayOfYear(c Calendar, d Date) int {
	doy := d.Day
	for m := 1; m < d.Month; m++ {
		doy += c.DaysInMonth(d.Year, m)
	}

	return doy
}

func validate(c Calendar, d Date) error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("calendar: month %d out of range in %s", d.Month, d)
	}
	if dim := c.DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > dim {
		return fmt.Errorf("calendar: day %d out of range for %04d-%02d in %s calendar", d.Day, d.Year, d.Month, c.Name())
	}

	return nil
}

// addDays walks month by month rather than day by day, so crossing several
// years stays cheap.
func addDays(c Calendar, d Date, n int) Date {
	y, m, day := d.Year, d.Month, d.Day+n

	for day > c.DaysInMonth(y, m) {
		day -= c.DaysInMonth(y, m)
		m++
		if m > 12 {
			m = 1
			y++
		}
	}
	for day < 1 {
		m--
		if m < 1 {
			m = 12
			y--
		}
		day += c.DaysInMonth(y, m)
	}

	return Date{Year: y, Month: m, Day: day}
}
