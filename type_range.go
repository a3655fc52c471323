package ptax

import (
	"fmt"
	"iter"
	"time"
)

// Range represents a range of dates, both bounds included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Months returns an iterator that yields the first day of every month
// touched by the range, from the month of r.From to the month of r.To.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		last := r.To.StartOf(Monthly)
		for m := r.From.StartOf(Monthly); !m.After(last); m = m.AddMonth(1) {
			if !yield(m) {
				return
			}
		}
	}
}

// Years returns every year touched by the range, in order.
func (r Range) Years() []int {
	var years []int
	for y := r.From.Year(); y <= r.To.Year(); y++ {
		years = append(years, y)
	}
	return years
}

// Weekdays counts the days of the range that are not on a weekend.
func (r Range) Weekdays() int {
	n := 0
	for d := range r.Days() {
		if !d.IsWeekend() {
			n++
		}
	}
	return n
}

// Identifier compute a unique identifier for the Range.
// If the range is a whole period, use a short insighful name
func (r Range) Identifier() string {
	switch {
	case r.From == r.To:
		return r.From.String()
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		_, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return r.From.Format("2006-01")
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return r.From.Format("2006")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
