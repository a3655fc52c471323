package ptax

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation is a raw quotation as published by the quote source.
// Only the date part of At is significant.
type Observation struct {
	At   time.Time
	Buy  decimal.Decimal
	Sell decimal.Decimal
}

// Day returns the calendar day of the observation.
func (o Observation) Day() Date { return DateOf(o.At) }

// Quote is the quotation retained for a single day.
type Quote struct {
	Day  Date
	Buy  decimal.Decimal
	Sell decimal.Decimal
}

// Align indexes observations by day, keeping only the requested days.
//
// When a day has several observations the first one in the input wins. Days
// without any observation are absent from the result. Prices are kept as is.
func Align(observations []Observation, days []Date) map[Date]Quote {
	wanted := make(map[Date]bool, len(days))
	for _, d := range days {
		wanted[d] = true
	}
	quotes := make(map[Date]Quote, len(wanted))
	for _, o := range observations {
		day := o.Day()
		if !wanted[day] {
			continue
		}
		if _, seen := quotes[day]; seen {
			continue
		}
		quotes[day] = Quote{Day: day, Buy: o.Buy, Sell: o.Sell}
	}
	return quotes
}
