package calendar

import (
	"errors"
	"fmt"
)

// Kind identifies a calendar system. The numeric values are stable and are
// persisted in the blob format, so existing values must never be renumbered.
type Kind uint8

const (
	KindStandard Kind = 0x1 // KindStandard is the proleptic Gregorian calendar.
	KindNoLeap   Kind = 0x2 // KindNoLeap is a 365-day calendar without leap years.
	KindDay360   Kind = 0x3 // KindDay360 is a 360-day calendar with twelve 30-day months.
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindNoLeap:
		return "noleap"
	case KindDay360:
		return "360_day"
	default:
		return "unknown"
	}
}

// ErrUnknownCalendar is returned when a calendar name or kind is not recognized.
var ErrUnknownCalendar = errors.New("calendar: unknown calendar")

// Calendar is the strategy interface that makes the rest of the library
// calendar-agnostic. Day-of-year numbering, month lengths and date arithmetic
// all go through this interface; no other package special-cases leap years.
//
// Implementations are immutable values and safe for concurrent use.
type Calendar interface {
	// Kind returns the stable identifier of this calendar system.
	Kind() Kind

	// Name returns the canonical lowercase name, e.g. "standard".
	Name() string

	// IsLeapYear reports whether the given year contains a leap day.
	// Always false for fixed-length calendars.
	IsLeapYear(year int) bool

	// DaysInMonth returns the number of days in the given month (1-12) of the
	// given year. Month values outside 1-12 return 0.
	DaysInMonth(year, month int) int

	// DaysInYear returns the total number of days in the given year.
	DaysInYear(year int) int

	// MaxDaysInYear returns the largest possible year length (366 for
	// standard, 365 for noleap, 360 for 360_day). Used to size
	// day-of-year lookup tables.
	MaxDaysInYear() int

	// DayOfYear returns the 1-based day-of-year of a valid date.
	DayOfYear(d Date) int

	// Validate returns an error if the date does not exist in this calendar,
	// e.g. Feb 29 in a noleap calendar or Jan 31 in a 360-day calendar.
	Validate(d Date) error

	// AddDays returns the date n days after d (before, for negative n).
	AddDays(d Date, n int) Date
}

// New resolves a calendar by name. Recognized names follow the CF convention
// spellings: "standard", "gregorian", "proleptic_gregorian", "noleap",
// "365_day", "360_day". Unknown names are rejected eagerly with
// ErrUnknownCalendar; resolution happens once at configuration time, never
// during computation.
func New(name string) (Calendar, error) {
	switch name {
	case "standard", "gregorian", "proleptic_gregorian":
		return Standard{}, nil
	case "noleap", "365_day":
		return NoLeap{}, nil
	case "360_day":
		return Day360{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
}

// FromKind resolves a calendar from its stable Kind identifier.
// Used when reconstructing tables from the blob format.
func FromKind(k Kind) (Calendar, error) {
	switch k {
	case KindStandard:
		return Standard{}, nil
	case KindNoLeap:
		return NoLeap{}, nil
	case KindDay360:
		return Day360{}, nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownCalendar, k)
	}
}
