package workdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {

	t.Run("ParseDate Round Trip", func(t *testing.T) {
		d, err := ParseDate("2024-01-01")
		assert.NoError(t, err)
		assert.Equal(t, NewDate(2024, time.January, 1), d)
		assert.Equal(t, "2024-01-01", d.ISO())
	})

	t.Run("ParseDate Invalid", func(t *testing.T) {
		_, err := ParseDate("01/01/2024")
		assert.Error(t, err)
	})

	t.Run("DateOf Discards Time Of Day", func(t *testing.T) {
		instant := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, NewDate(2024, time.March, 15), DateOf(instant))
	})

	t.Run("Next Crosses Month And Year Boundaries", func(t *testing.T) {
		assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 29).Next())
		assert.Equal(t, NewDate(2025, time.January, 1), NewDate(2024, time.December, 31).Next())
	})

	t.Run("Ordering", func(t *testing.T) {
		a := NewDate(2024, time.January, 1)
		b := NewDate(2024, time.January, 2)
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.True(t, a.Equal(a))
		assert.False(t, a.Equal(b))
	})

	t.Run("Weekend Detection", func(t *testing.T) {
		assert.True(t, NewDate(2024, time.January, 6).IsWeekend(), "Saturday")
		assert.True(t, NewDate(2024, time.January, 7).IsWeekend(), "Sunday")
		assert.False(t, NewDate(2024, time.January, 8).IsWeekend(), "Monday")
	})
}

func TestIsHoliday(t *testing.T) {
	holidays := HolidayMap{"2024-01-01": "Jour de l'an"}

	assert.True(t, IsHoliday(NewDate(2024, time.January, 1), holidays))
	assert.False(t, IsHoliday(NewDate(2024, time.January, 2), holidays))

	name, ok := HolidayName(NewDate(2024, time.January, 1), holidays)
	assert.True(t, ok)
	assert.Equal(t, "Jour de l'an", name)

	_, ok = HolidayName(NewDate(2024, time.January, 2), holidays)
	assert.False(t, ok)
}

func TestCountWorkingDays(t *testing.T) {
	newYear := HolidayMap{"2024-01-01": "Jour de l'an"}

	t.Run("Week With Holiday", func(t *testing.T) {
		// 2024-01-01 is a Monday holiday, 6th and 7th are the weekend.
		count := CountWorkingDays(NewDate(2024, time.January, 1), NewDate(2024, time.January, 7), newYear)
		assert.Equal(t, 4, count)
	})

	t.Run("Week With Empty Holiday Map", func(t *testing.T) {
		count := CountWorkingDays(NewDate(2024, time.January, 1), NewDate(2024, time.January, 7), HolidayMap{})
		assert.Equal(t, 5, count)
	})

	t.Run("Inverted Range Is Zero", func(t *testing.T) {
		count := CountWorkingDays(NewDate(2024, time.January, 7), NewDate(2024, time.January, 1), newYear)
		assert.Equal(t, 0, count)
	})

	t.Run("Single Day Ranges", func(t *testing.T) {
		monday := NewDate(2024, time.January, 8)
		assert.Equal(t, 1, CountWorkingDays(monday, monday, newYear))

		saturday := NewDate(2024, time.January, 6)
		assert.Equal(t, 0, CountWorkingDays(saturday, saturday, newYear))

		holiday := NewDate(2024, time.January, 1)
		assert.Equal(t, 0, CountWorkingDays(holiday, holiday, newYear))
	})

	t.Run("Idempotent", func(t *testing.T) {
		start, end := NewDate(2024, time.April, 1), NewDate(2024, time.April, 30)
		first := CountWorkingDays(start, end, newYear)
		second := CountWorkingDays(start, end, newYear)
		assert.Equal(t, first, second)
	})

	t.Run("Sum Law", func(t *testing.T) {
		// working + weekend + non-weekend holidays == calendar days inclusive.
		holidays := HolidayMap{
			"2024-05-01": "Fête du Travail",
			"2024-05-08": "Victoire 1945",
			"2024-05-09": "Ascension",
		}
		start, end := NewDate(2024, time.May, 1), NewDate(2024, time.May, 31)

		working := CountWorkingDays(start, end, holidays)
		excluded := ExcludedDaysInfo(start, end, holidays)

		assert.Equal(t, 31, working+excluded.WeekendCount+len(excluded.Holidays))
	})
}

func TestExcludedDaysInfo(t *testing.T) {

	t.Run("Weekend Count And Holiday List", func(t *testing.T) {
		holidays := HolidayMap{"2024-01-01": "Jour de l'an"}
		info := ExcludedDaysInfo(NewDate(2024, time.January, 1), NewDate(2024, time.January, 7), holidays)

		assert.Equal(t, 2, info.WeekendCount)
		assert.Equal(t, []HolidayInfo{{Date: NewDate(2024, time.January, 1), Name: "Jour de l'an"}}, info.Holidays)
	})

	t.Run("Weekend Holiday Counted Once Under Weekend", func(t *testing.T) {
		// 2024-11-03 falls on a Sunday.
		holidays := HolidayMap{"2024-11-03": "Fictitious Sunday Holiday"}
		info := ExcludedDaysInfo(NewDate(2024, time.November, 1), NewDate(2024, time.November, 8), holidays)

		assert.Equal(t, 2, info.WeekendCount)
		assert.Empty(t, info.Holidays)
	})

	t.Run("Inverted Range Is Empty", func(t *testing.T) {
		info := ExcludedDaysInfo(NewDate(2024, time.January, 7), NewDate(2024, time.January, 1), HolidayMap{"2024-01-01": "Jour de l'an"})
		assert.Equal(t, 0, info.WeekendCount)
		assert.Empty(t, info.Holidays)
	})

	t.Run("Holidays Sorted Ascending", func(t *testing.T) {
		holidays := HolidayMap{
			"2024-05-08": "Victoire 1945",
			"2024-05-01": "Fête du Travail",
		}
		info := ExcludedDaysInfo(NewDate(2024, time.May, 1), NewDate(2024, time.May, 31), holidays)

		assert.Len(t, info.Holidays, 2)
		assert.Equal(t, "Fête du Travail", info.Holidays[0].Name)
		assert.Equal(t, "Victoire 1945", info.Holidays[1].Name)
	})
}

func TestHolidayFilters(t *testing.T) {
	holidays := HolidayMap{
		"2023-12-25": "Noël",
		"2024-01-01": "Jour de l'an",
		"2024-05-01": "Fête du Travail",
		"2024-12-25": "Noël",
		"2025-01-01": "Jour de l'an",
	}

	t.Run("HolidaysForYear Exact Prefix", func(t *testing.T) {
		year2024 := HolidaysForYear(holidays, 2024)
		assert.Len(t, year2024, 3)
		assert.Equal(t, "2024-01-01", year2024[0].Date.ISO())
		assert.Equal(t, "2024-05-01", year2024[1].Date.ISO())
		assert.Equal(t, "2024-12-25", year2024[2].Date.ISO())
	})

	t.Run("HolidaysForYear Empty Year", func(t *testing.T) {
		assert.Empty(t, HolidaysForYear(holidays, 2020))
	})

	t.Run("HolidaysForYear Skips Malformed Keys", func(t *testing.T) {
		tainted := HolidayMap{
			"2024-1-01":  "clé invalide",
			"2024-05-01": "Fête du Travail",
		}
		infos := HolidaysForYear(tainted, 2024)
		assert.Len(t, infos, 1)
		assert.Equal(t, "2024-05-01", infos[0].Date.ISO())
	})

	t.Run("HolidaysForRange Crosses Year Boundary", func(t *testing.T) {
		infos := HolidaysForRange(holidays, NewDate(2023, time.December, 1), NewDate(2024, time.January, 31))
		assert.Len(t, infos, 2)
		assert.Equal(t, "2023-12-25", infos[0].Date.ISO())
		assert.Equal(t, "2024-01-01", infos[1].Date.ISO())
	})

	t.Run("HolidayDatesForCalendar Year Ascending", func(t *testing.T) {
		dates := HolidayDatesForCalendar(holidays, 2023, 2025)
		assert.Len(t, dates, 5)
		assert.Equal(t, "2023-12-25", dates[0].ISO())
		assert.Equal(t, "2025-01-01", dates[len(dates)-1].ISO())
	})
}
