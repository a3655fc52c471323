package ptax

// fortnight is the offset, in weeks, from the start of the previous month to
// the end of its first fortnight. It does not depend on the month length.
const fortnight = 2

// Anchor ties a reference month to the business day whose quotation it uses.
type Anchor struct {
	Reference Date // first day of the reported month
	Previous  Date // first day of the month before Reference
	Day       Date // last business day of the first fortnight of Previous
}

// AnchorFor computes the anchor of the reference month containing month.
func AnchorFor(month Date, holidays HolidaySet) Anchor {
	reference := month.StartOf(Monthly)
	previous := reference.AddMonth(-1)
	return Anchor{
		Reference: reference,
		Previous:  previous,
		Day:       LastBusinessDay(previous.AddWeeks(fortnight), holidays),
	}
}

// Anchors returns one Anchor per month, in the same order.
func Anchors(months []Date, holidays HolidaySet) []Anchor {
	anchors := make([]Anchor, 0, len(months))
	for _, m := range months {
		anchors = append(anchors, AnchorFor(m, holidays))
	}
	return anchors
}

// AnchorDays returns the anchor day of each anchor, in order.
func AnchorDays(anchors []Anchor) []Date {
	days := make([]Date, 0, len(anchors))
	for _, a := range anchors {
		days = append(days, a.Day)
	}
	return days
}

// AnchorSpan returns the smallest range containing every anchor day.
// It returns false if there are no anchors.
func AnchorSpan(anchors []Anchor) (Range, bool) {
	if len(anchors) == 0 {
		return Range{}, false
	}
	span := Range{From: anchors[0].Day, To: anchors[0].Day}
	for _, a := range anchors[1:] {
		if a.Day.Before(span.From) {
			span.From = a.Day
		}
		if a.Day.After(span.To) {
			span.To = a.Day
		}
	}
	return span, true
}
