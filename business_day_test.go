package ptax

import "testing"

func TestLastBusinessDay(t *testing.T) {
	tests := []struct {
		name      string
		candidate Date
		holidays  HolidaySet
		want      Date
	}{
		{
			name:      "business day is unchanged",
			candidate: NewDate(2020, 2, 13),
			want:      NewDate(2020, 2, 13),
		},
		{
			name:      "saturday walks back to friday",
			candidate: NewDate(2020, 2, 15),
			want:      NewDate(2020, 2, 14),
		},
		{
			name:      "sunday walks back to friday",
			candidate: NewDate(2020, 2, 16),
			want:      NewDate(2020, 2, 14),
		},
		{
			name:      "holiday friday after saturday",
			candidate: NewDate(2020, 2, 15),
			holidays:  Holidays(NewDate(2020, 2, 14)),
			want:      NewDate(2020, 2, 13),
		},
		{
			name:      "carnival monday and tuesday",
			candidate: NewDate(2021, 2, 16),
			holidays:  Holidays(NewDate(2021, 2, 15), NewDate(2021, 2, 16)),
			want:      NewDate(2021, 2, 12),
		},
		{
			name:      "across a month boundary",
			candidate: NewDate(2020, 3, 1),
			holidays:  Holidays(NewDate(2020, 2, 28), NewDate(2020, 2, 27)),
			want:      NewDate(2020, 2, 26),
		},
		{
			name:      "never moves forward",
			candidate: NewDate(2020, 1, 1),
			holidays:  Holidays(NewDate(2020, 1, 1)),
			want:      NewDate(2019, 12, 31),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastBusinessDay(tt.candidate, tt.holidays); got != tt.want {
				t.Errorf("LastBusinessDay(%v) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

// TestLastBusinessDay_Properties checks every day of a few years against a
// calendar with long holiday runs.
func TestLastBusinessDay_Properties(t *testing.T) {
	var days []Date
	for d := range NewRange(NewDate(2019, 12, 20), NewDate(2020, 1, 3)).Days() {
		days = append(days, d) // two weeks in a row
	}
	days = append(days, NewDate(2020, 2, 24), NewDate(2020, 2, 25), NewDate(2020, 4, 10), NewDate(2020, 11, 2))
	holidays := Holidays(days...)

	for d := range NewRange(NewDate(2019, 1, 1), NewDate(2021, 12, 31)).Days() {
		got := LastBusinessDay(d, holidays)
		if got.After(d) {
			t.Errorf("LastBusinessDay(%v) = %v is after the candidate", d, got)
		}
		if got.IsWeekend() || holidays.Contains(got) {
			t.Errorf("LastBusinessDay(%v) = %v is not a business day", d, got)
		}
		if holidays.IsBusinessDay(d) && got != d {
			t.Errorf("LastBusinessDay(%v) = %v, want the business day unchanged", d, got)
		}
		if again := LastBusinessDay(got, holidays); again != got {
			t.Errorf("LastBusinessDay(LastBusinessDay(%v)) = %v, want %v", d, again, got)
		}
		for between := got.Add(1); between.Before(d); between = between.Add(1) {
			if holidays.IsBusinessDay(between) {
				t.Errorf("LastBusinessDay(%v) = %v skipped business day %v", d, got, between)
			}
		}
	}
}
