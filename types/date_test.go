package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMonthKey(t *testing.T) {
	t.Run("valid keys", func(t *testing.T) {
		m, err := ParseMonthKey("2024-06")
		require.NoError(t, err)
		require.Equal(t, Month{Year: 2024, Month: time.June}, m)
		require.Equal(t, "2024-06", m.Key())

		m, err = ParseMonthKey("0999-12")
		require.NoError(t, err)
		require.Equal(t, "0999-12", m.Key())
	})

	t.Run("invalid keys", func(t *testing.T) {
		for _, key := range []string{"", "2024", "2024-6", "2024-13", "2024-00", "24-06-01", "2024/06", "+024-06", "2024-+6", "abcd-ef", "0000-01"} {
			_, err := ParseMonthKey(key)
			require.ErrorIs(t, err, ErrInvalidMonthKey, "key %q", key)
			require.Contains(t, err.Error(), key)
		}
	})
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		month Month
		want  int
	}{
		{Month{2024, time.January}, 31},
		{Month{2024, time.April}, 30},
		{Month{2023, time.February}, 28},
		{Month{2024, time.February}, 29},
		{Month{1900, time.February}, 28},
		{Month{2000, time.February}, 29},
		{Month{2024, time.December}, 31},
	}

	for _, tt := range tests {
		t.Run(tt.month.Key(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.month.Days())
		})
	}
}

func TestDate(t *testing.T) {
	t.Run("key round trip", func(t *testing.T) {
		d := Month{2024, time.June}.Date(6)
		require.Equal(t, "2024-06-06", d.Key())
		require.Equal(t, time.Thursday, d.Weekday())

		parsed, err := ParseDateKey(d.Key())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
		require.Equal(t, Month{2024, time.June}, parsed.MonthOf())
	})

	t.Run("invalid date key", func(t *testing.T) {
		_, err := ParseDateKey("2024-02-30")
		require.ErrorIs(t, err, ErrInvalidDateKey)
	})

	t.Run("compare", func(t *testing.T) {
		a := Date{2024, time.June, 6}
		b := Date{2024, time.June, 8}
		require.Equal(t, -1, a.Compare(b))
		require.Equal(t, 1, b.Compare(a))
		require.Equal(t, 0, a.Compare(a))
	})

	t.Run("date of ignores clock", func(t *testing.T) {
		ts := time.Date(2024, time.June, 8, 23, 59, 0, 0, time.UTC)
		require.Equal(t, Date{2024, time.June, 8}, DateOf(ts))
		require.Equal(t, Month{2024, time.June}, MonthOf(ts))
	})
}
