package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func keys(dates []types.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Key()
	}

	return out
}

func TestMeetingDates_June2024(t *testing.T) {
	dates := MeetingDates(types.Month{Year: 2024, Month: time.June}, time.Thursday, time.Saturday)

	require.Equal(t, []string{
		"2024-06-01", "2024-06-06", "2024-06-08", "2024-06-13", "2024-06-15",
		"2024-06-20", "2024-06-22", "2024-06-27", "2024-06-29",
	}, keys(dates))
}

func TestMeetingDates_Properties(t *testing.T) {
	tests := []struct {
		name  string
		month types.Month
		days  int
		want  int // Thursdays plus Saturdays, counted on a wall calendar
	}{
		{"31-day month", types.Month{Year: 2024, Month: time.August}, 31, 10},
		{"30-day month", types.Month{Year: 2024, Month: time.September}, 30, 8},
		{"february common year", types.Month{Year: 2023, Month: time.February}, 28, 8},
		{"february leap year", types.Month{Year: 2024, Month: time.February}, 29, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := MeetingDates(tt.month, DefaultWeekdays()...)
			require.Len(t, dates, tt.want)

			for i, d := range dates {
				assert.Equal(t, tt.month, d.MonthOf())
				assert.LessOrEqual(t, d.Day, tt.days)
				assert.Contains(t, []time.Weekday{time.Thursday, time.Saturday}, d.Weekday())
				if i > 0 {
					assert.Equal(t, 1, d.Compare(dates[i-1]), "dates must be strictly ascending")
				}
			}
		})
	}
}

func TestMeetingDates_EdgeCases(t *testing.T) {
	june := types.Month{Year: 2024, Month: time.June}

	t.Run("no weekdays", func(t *testing.T) {
		dates := MeetingDates(june)
		require.NotNil(t, dates)
		require.Empty(t, dates)
	})

	t.Run("duplicates ignored", func(t *testing.T) {
		require.Equal(t,
			MeetingDates(june, time.Thursday),
			MeetingDates(june, time.Thursday, time.Thursday))
	})

	t.Run("out of range ignored", func(t *testing.T) {
		require.Equal(t,
			MeetingDates(june, time.Sunday),
			MeetingDates(june, time.Sunday, time.Weekday(9), time.Weekday(-1)))
	})

	t.Run("every day", func(t *testing.T) {
		all := []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
		require.Len(t, MeetingDates(june, all...), 30)
	})
}

func TestGenerator(t *testing.T) {
	t.Run("defaults to thursday and saturday", func(t *testing.T) {
		g := NewGenerator()
		require.Equal(t, DefaultWeekdays(), g.Weekdays())

		month, dates, err := g.ForKey("2024-06")
		require.NoError(t, err)
		require.Equal(t, types.Month{Year: 2024, Month: time.June}, month)
		require.Len(t, dates, 9)
	})

	t.Run("invalid key fails fast", func(t *testing.T) {
		_, dates, err := NewGenerator().ForKey("2024-13")
		require.ErrorIs(t, err, types.ErrInvalidMonthKey)
		require.Nil(t, dates)
	})

	t.Run("custom weekdays", func(t *testing.T) {
		g := NewGenerator(time.Sunday)
		dates := g.Generate(types.Month{Year: 2024, Month: time.June})
		require.Equal(t, []string{"2024-06-02", "2024-06-09", "2024-06-16", "2024-06-23", "2024-06-30"}, keys(dates))
	})
}

func TestMonthsOfYear(t *testing.T) {
	months := MonthsOfYear(2024)
	require.Len(t, months, 12)
	require.Equal(t, "2024-01", months[0].Key())
	require.Equal(t, "2024-12", months[11].Key())
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"Thursday": time.Thursday,
		"thu":      time.Thursday,
		" jueves ": time.Thursday,
		"SÁBADO":   time.Saturday,
		"sabado":   time.Saturday,
		"sunday":   time.Sunday,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseWeekday(name)
			require.True(t, ok)
			require.Equal(t, want, got)
		})
	}

	_, ok := ParseWeekday("someday")
	require.False(t, ok)
}
