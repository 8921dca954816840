package reconcile

import (
	"fmt"
	"time"
)

// Comparison is the percentage-point change between two periods.
type Comparison struct {
	CurrentRate float64 `json:"currentRate"`
	PriorRate   float64 `json:"priorRate"`
	DeltaPoints float64 `json:"deltaPoints"`
	Formatted   string  `json:"formatted"`
}

// CompareRanges diffs two range results. Ranges with nothing expected already
// carry a rate of 0, so the delta is always defined.
func CompareRanges(current, prior RateResult) Comparison {
	delta := current.Rate - prior.Rate
	if delta == 0 {
		// normalizes -0
		delta = 0
	}
	return Comparison{
		CurrentRate: current.Rate,
		PriorRate:   prior.Rate,
		DeltaPoints: delta,
		Formatted:   FormatDelta(delta),
	}
}

// FormatDelta renders a delta with an explicit "+" for zero and positive values.
func FormatDelta(delta float64) string {
	if delta >= 0 {
		return fmt.Sprintf("+%.1f%%", delta)
	}
	return fmt.Sprintf("%.1f%%", delta)
}

// WeekRange is the Monday..Sunday week containing t.
func WeekRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	day := DayOf(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange is the calendar month containing t.
func MonthRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	day := DayOf(t, loc)
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, -1)
}

// PriorRange is the range of the same length that ends the day before start.
func PriorRange(start, end time.Time, loc *time.Location) (time.Time, time.Time) {
	first, last := DayOf(start, loc), DayOf(end, loc)
	n := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		n++
	}
	return first.AddDate(0, 0, -n), first.AddDate(0, 0, -1)
}

// PriorMonthRange is the calendar month before the one containing t.
func PriorMonthRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start, _ := MonthRange(t, loc)
	return MonthRange(start.AddDate(0, 0, -1), loc)
}
