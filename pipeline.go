package ptax

import (
	"context"
	"fmt"
	"log"
	"slices"

	"golang.org/x/sync/errgroup"
)

// HolidaySource provides the business calendar of a year.
type HolidaySource interface {
	Calendar(ctx context.Context, year int) ([]CalendarDay, error)
}

// QuoteSource provides the raw quotations published between r.From and r.To,
// both included.
type QuoteSource interface {
	Quotes(ctx context.Context, r Range) ([]Observation, error)
}

// Report is the outcome of a reporting run.
type Report struct {
	Months   Range
	Holidays HolidaySet
	Anchors  []Anchor
	Span     Range          // smallest range containing every anchor day
	Quotes   map[Date]Quote // quotes found on anchor days
	Rows     []Row
}

// BuildHolidaySet fetches the calendars of all years concurrently and merges
// them. The first failure cancels the other fetches and is returned.
func BuildHolidaySet(ctx context.Context, src HolidaySource, years []int) (HolidaySet, error) {
	calendars := make([][]CalendarDay, len(years))
	g, ctx := errgroup.WithContext(ctx)
	for i, year := range years {
		g.Go(func() error {
			cal, err := src.Calendar(ctx, year)
			if err != nil {
				return fmt.Errorf("calendar %d: %w", year, err)
			}
			calendars[i] = cal
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return HolidaySet{}, err
	}
	return NewHolidaySet(calendars...)
}

// Generate runs the whole report for the reference months in months.
//
// Quotes are only requested once the anchors are known, for the span of the
// anchor days. Anchors without a quote are missing from Rows.
func Generate(ctx context.Context, months Range, holidays HolidaySource, quotes QuoteSource) (*Report, error) {
	years := CalendarYears(months)
	set, err := BuildHolidaySet(ctx, holidays, years)
	if err != nil {
		return nil, err
	}
	log.Printf("%d holidays in %d-%d", set.Len(), years[0], years[len(years)-1])

	r := &Report{
		Months:   months,
		Holidays: set,
		Anchors:  Anchors(slices.Collect(months.Months()), set),
		Quotes:   map[Date]Quote{},
	}
	span, ok := AnchorSpan(r.Anchors)
	if !ok {
		return r, nil
	}
	r.Span = span

	observations, err := quotes.Quotes(ctx, span)
	if err != nil {
		return nil, fmt.Errorf("quotes %s: %w", span, err)
	}
	r.Quotes = Align(observations, AnchorDays(r.Anchors))
	r.Rows = Assemble(r.Anchors, r.Quotes)
	log.Printf("%d observations, %d of %d anchors quoted", len(observations), len(r.Rows), len(r.Anchors))
	return r, nil
}
