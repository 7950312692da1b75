package calendar

import (
	"slices"
	"strings"
	"time"

	"github.com/arloliu/rota/types"
)

// DefaultWeekdays returns the default meeting weekdays: Thursday and Saturday.
func DefaultWeekdays() []time.Weekday {
	return []time.Weekday{time.Thursday, time.Saturday}
}

// MeetingDates returns every day of month whose weekday is one of weekdays.
//
// Dates are returned in ascending order. The day count comes from the month's
// last day, so 28, 29, 30 and 31-day months are all handled. Duplicate or
// out-of-range weekdays are ignored; no weekdays yields an empty result.
//
// Parameters:
//   - month: Month to expand
//   - weekdays: Meeting weekdays
//
// Returns:
//   - []types.Date: Meeting dates in ascending order (never nil)
//
// Example:
//
//	dates := calendar.MeetingDates(types.Month{Year: 2024, Month: time.June}, time.Thursday, time.Saturday)
//	// 2024-06-01, 06-06, 06-08, 06-13, 06-15, 06-20, 06-22, 06-27, 06-29
func MeetingDates(month types.Month, weekdays ...time.Weekday) []types.Date {
	var set [7]bool
	for _, wd := range weekdays {
		if wd >= time.Sunday && wd <= time.Saturday {
			set[wd] = true
		}
	}

	dates := make([]types.Date, 0, 10)
	days := month.Days()
	first := month.Date(1).Weekday()
	for day := 1; day <= days; day++ {
		wd := time.Weekday((int(first) + day - 1) % 7)
		if set[wd] {
			dates = append(dates, month.Date(day))
		}
	}

	return dates
}

// MonthsOfYear returns the twelve months of year in order.
//
// Used to populate month pickers.
func MonthsOfYear(year int) []types.Month {
	months := make([]types.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, types.Month{Year: year, Month: m})
	}

	return months
}

// Generator produces meeting dates for a fixed weekday set.
type Generator struct {
	weekdays []time.Weekday
}

// NewGenerator creates a generator for the given weekdays.
//
// With no weekdays the generator falls back to DefaultWeekdays.
func NewGenerator(weekdays ...time.Weekday) *Generator {
	if len(weekdays) == 0 {
		weekdays = DefaultWeekdays()
	}

	return &Generator{weekdays: slices.Clone(weekdays)}
}

// Weekdays returns a copy of the configured weekdays.
func (g *Generator) Weekdays() []time.Weekday {
	return slices.Clone(g.weekdays)
}

// Generate returns the meeting dates of month.
func (g *Generator) Generate(month types.Month) []types.Date {
	return MeetingDates(month, g.weekdays...)
}

// ForKey parses a "YYYY-MM" key and returns its meeting dates.
//
// Returns:
//   - types.Month: Parsed month
//   - []types.Date: Meeting dates in ascending order
//   - error: types.ErrInvalidMonthKey for malformed keys
func (g *Generator) ForKey(key string) (types.Month, []types.Date, error) {
	month, err := types.ParseMonthKey(key)
	if err != nil {
		return types.Month{}, nil, err
	}

	return month, g.Generate(month), nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "domingo": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "lunes": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "martes": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "miercoles": time.Wednesday, "miércoles": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "jueves": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "viernes": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "sabado": time.Saturday, "sábado": time.Saturday,
}

// ParseWeekday parses an English or Spanish weekday name, full or abbreviated,
// case-insensitively (e.g., "Thursday", "thu", "jueves").
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
