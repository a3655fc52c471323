package ptax

// IsBusinessDay reports whether d is neither a weekend day nor a holiday.
func (h HolidaySet) IsBusinessDay(d Date) bool { return !d.IsWeekend() && !h.Contains(d) }

// LastBusinessDay returns the latest business day on or before candidate.
//
// The walk only goes backward, one day at a time. The set is finite, so it
// always ends.
func LastBusinessDay(candidate Date, holidays HolidaySet) Date {
	for !holidays.IsBusinessDay(candidate) {
		candidate = candidate.Add(-1)
	}
	return candidate
}
