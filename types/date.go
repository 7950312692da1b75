package types

import (
	"fmt"
	"strconv"
	"time"
)

const (
	monthKeyLayout = "2006-01"
	dateKeyLayout  = "2006-01-02"
)

// Month identifies a calendar month. Its selection key is "YYYY-MM".
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParseMonthKey parses a "YYYY-MM" key.
//
// The key must be exactly seven characters with a four-digit year and a
// two-digit month in 01..12. Anything else fails fast instead of producing
// dates for a different month.
//
// Parameters:
//   - key: Month key (e.g., "2024-06")
//
// Returns:
//   - Month: Parsed month
//   - error: ErrInvalidMonthKey wrapping the offending key
func ParseMonthKey(key string) (Month, error) {
	if len(key) != len(monthKeyLayout) || key[4] != '-' || !isDigits(key[:4]) || !isDigits(key[5:]) {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, key)
	}
	year, err := strconv.Atoi(key[:4])
	if err != nil || year < 1 {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, key)
	}
	month, err := strconv.Atoi(key[5:])
	if err != nil || month < 1 || month > 12 {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, key)
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Key returns the "YYYY-MM" selection key.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// String implements fmt.Stringer.
func (m Month) String() string {
	return m.Key()
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Days returns the number of days in the month, accounting for leap years.
func (m Month) Days() int {
	// Day 0 of the following month normalizes to the last day of m.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the given day of the month.
func (m Month) Date(day int) Date {
	return Date{Year: m.Year, Month: m.Month, Day: day}
}

// Date is a civil calendar date without time or zone.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDateKey parses an ISO "YYYY-MM-DD" key.
//
// Returns:
//   - Date: Parsed date
//   - error: ErrInvalidDateKey wrapping the offending key
func ParseDateKey(key string) (Date, error) {
	t, err := time.Parse(dateKeyLayout, key)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}

	return DateOf(t), nil
}

// Key returns the ISO "YYYY-MM-DD" key used as the AssignmentMap outer key.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Key()
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MonthOf returns the month the date belongs to.
func (d Date) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

// Compare orders dates chronologically.
//
// Returns:
//   - int: -1 if d < o, 0 if equal, +1 if d > o
func (d Date) Compare(o Date) int {
	return d.Time().Compare(o.Time())
}
