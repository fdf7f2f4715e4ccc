// Package calendar models the calendar systems used by climate model output.
//
// Climate datasets are produced under several calendar conventions: the real
// proleptic Gregorian calendar, a 365-day "noleap" calendar, and an idealized
// 360-day calendar with twelve 30-day months. Day-of-year numbering, month
// lengths and period boundaries all differ between them, so the calendar is
// injected as a strategy value (the Calendar interface) instead of being
// special-cased inside the numeric engines.
//
// Dates are represented by the Date value type rather than time.Time, because
// time.Time cannot represent dates such as 2001-02-30 that are perfectly
// valid in a 360-day calendar.
//
// Resolve a calendar once, at configuration time:
//
//	cal, err := calendar.New("noleap")
//	if err != nil {
//	    return err
//	}
//	doy := cal.DayOfYear(calendar.Date{Year: 1990, Month: 3, Day: 1}) // 60, never 61
package calendar
