package ptax

import (
	"fmt"
	"slices"
)

// CalendarDay is one day of a yearly business calendar, as published by the
// holiday source.
type CalendarDay struct {
	Date                      string `json:"date"`
	Holiday                   bool   `json:"holiday"`
	LimitedFinancialOperation bool   `json:"limited_financial_operation"`
	Description               string `json:"description,omitempty"`
}

// closed reports whether no financial settlement happens on that day.
//
// Both flags are required: a holiday with normal financial operations is a
// business day here, and so is a limited-operation day that is not a holiday.
func (c CalendarDay) closed() bool { return c.Holiday && c.LimitedFinancialOperation }

// HolidaySet is the immutable set of days on which financial settlement does
// not occur. The zero value is an empty set.
type HolidaySet struct {
	days   map[Date]struct{}
	sorted []Date
}

// NewHolidaySet merges yearly calendars into a HolidaySet.
//
// Dates listed in several calendars are kept once. An invalid date string
// anywhere in the calendars is an error, whatever the flags of its day.
func NewHolidaySet(calendars ...[]CalendarDay) (HolidaySet, error) {
	h := HolidaySet{days: make(map[Date]struct{})}
	for _, calendar := range calendars {
		for _, day := range calendar {
			on, err := ParseDate(day.Date)
			if err != nil {
				return HolidaySet{}, fmt.Errorf("%w: holiday calendar: %w", ErrInvalidConfig, err)
			}
			if !day.closed() {
				continue
			}
			if _, exists := h.days[on]; exists {
				continue
			}
			h.days[on] = struct{}{}
			h.sorted = append(h.sorted, on)
		}
	}
	slices.SortFunc(h.sorted, compareDates)
	return h, nil
}

// Holidays returns a HolidaySet made of the given days.
func Holidays(days ...Date) HolidaySet {
	cal := make([]CalendarDay, 0, len(days))
	for _, d := range days {
		cal = append(cal, CalendarDay{Date: d.String(), Holiday: true, LimitedFinancialOperation: true})
	}
	h, _ := NewHolidaySet(cal) // String() always produces valid dates
	return h
}

// Contains reports whether d is a holiday.
func (h HolidaySet) Contains(d Date) bool {
	_, ok := h.days[d]
	return ok
}

// Len returns the number of holidays in the set.
func (h HolidaySet) Len() int { return len(h.sorted) }

// Dates returns the holidays in chronological order.
func (h HolidaySet) Dates() []Date { return slices.Clone(h.sorted) }

// CalendarYears returns the years whose calendar is needed to compute the
// anchors of the reference months in r: from the year of the month preceding
// r.From up to the year of r.To.
func CalendarYears(months Range) []int {
	return NewRange(months.From.StartOf(Monthly).AddMonth(-1), months.To).Years()
}

func compareDates(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
