// Package workdays implements French working-day arithmetic over a
// caller-supplied public-holiday map. All functions are pure: no I/O, no
// hidden state, safe for concurrent use. Callers obtain the holiday map once
// per unit of work and pass the same snapshot into every call so results stay
// internally consistent.
package workdays

import (
	"fmt"
	"sort"
	"strings"
)

// HolidayMap maps ISO "YYYY-MM-DD" dates to holiday display names.
type HolidayMap map[string]string

type HolidayInfo struct {
	Date Date   `json:"date"`
	Name string `json:"name"`
}

// ExcludedDays breaks down the non-working days of a range. A day that is
// both a weekend day and a holiday is tallied once, under the weekend count,
// so the totals sum to the calendar span.
type ExcludedDays struct {
	WeekendCount int           `json:"weekend_count"`
	Holidays     []HolidayInfo `json:"holidays"`
}

func IsHoliday(d Date, holidays HolidayMap) bool {
	_, ok := holidays[d.ISO()]
	return ok
}

func HolidayName(d Date, holidays HolidayMap) (string, bool) {
	name, ok := holidays[d.ISO()]
	return name, ok
}

// CountWorkingDays counts the days in the inclusive range [start, end] that
// are neither Saturday/Sunday nor a listed holiday. An inverted range counts
// zero.
func CountWorkingDays(start, end Date, holidays HolidayMap) int {
	count := 0
	for d := start; !d.After(end); d = d.Next() {
		if d.IsWeekend() {
			continue
		}
		if IsHoliday(d, holidays) {
			continue
		}
		count++
	}
	return count
}

// ExcludedDaysInfo tallies weekend days and enumerates non-weekend holidays
// for the inclusive range [start, end], in ascending date order.
func ExcludedDaysInfo(start, end Date, holidays HolidayMap) ExcludedDays {
	info := ExcludedDays{Holidays: []HolidayInfo{}}
	for d := start; !d.After(end); d = d.Next() {
		if d.IsWeekend() {
			info.WeekendCount++
			continue
		}
		if name, ok := HolidayName(d, holidays); ok {
			info.Holidays = append(info.Holidays, HolidayInfo{Date: d, Name: name})
		}
	}
	return info
}

// HolidaysForYear filters the map to a single calendar year, sorted by date.
// Keys that are not valid ISO dates are skipped, so a malformed entry in the
// upstream feed never fails the whole listing.
func HolidaysForYear(holidays HolidayMap, year int) []HolidayInfo {
	prefix := fmt.Sprintf("%d-", year)
	result := []HolidayInfo{}
	for iso, name := range holidays {
		if !strings.HasPrefix(iso, prefix) {
			continue
		}
		d, err := ParseDate(iso)
		if err != nil {
			continue
		}
		result = append(result, HolidayInfo{Date: d, Name: name})
	}
	sortHolidayInfos(result)
	return result
}

// HolidaysForRange filters the map to an inclusive date range, crossing year
// boundaries, sorted by date.
func HolidaysForRange(holidays HolidayMap, start, end Date) []HolidayInfo {
	result := []HolidayInfo{}
	for iso, name := range holidays {
		d, err := ParseDate(iso)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		result = append(result, HolidayInfo{Date: d, Name: name})
	}
	sortHolidayInfos(result)
	return result
}

// HolidayDatesForCalendar flattens holiday dates across an inclusive year
// span, year-ascending, for date-picker highlighting.
func HolidayDatesForCalendar(holidays HolidayMap, startYear, endYear int) []Date {
	dates := []Date{}
	for year := startYear; year <= endYear; year++ {
		for _, holiday := range HolidaysForYear(holidays, year) {
			dates = append(dates, holiday.Date)
		}
	}
	return dates
}

func sortHolidayInfos(infos []HolidayInfo) {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Date.Before(infos[j].Date)
	})
}
