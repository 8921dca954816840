package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for dates throughout the engine.
const DateLayout = "2006-01-02"

var clockLayouts = []string{"3:04PM", "3PM"}

// ParseDate parses an ISO date (YYYY-MM-DD) as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// DayOf truncates t to midnight of its calendar day in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DateKey returns the ISO date of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ParseWeekday accepts a full English weekday name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, true
		}
	}
	return 0, false
}

// ResolveWindow turns a "h:mm AM - h:mm PM" range into absolute instants on the
// calendar day of date, in date's location.
func ResolveWindow(timeRange string, date time.Time) (time.Time, time.Time, error) {
	normalized := strings.NewReplacer("–", "-", "—", "-").Replace(timeRange)
	parts := strings.Split(normalized, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, &MalformedScheduleError{Text: timeRange, Reason: "expected exactly one dash between start and end"}
	}

	start, err := parseClock(parts[0], date)
	if err != nil {
		return time.Time{}, time.Time{}, &MalformedScheduleError{Text: timeRange, Reason: "bad start time: " + err.Error()}
	}
	end, err := parseClock(parts[1], date)
	if err != nil {
		return time.Time{}, time.Time{}, &MalformedScheduleError{Text: timeRange, Reason: "bad end time: " + err.Error()}
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, &MalformedScheduleError{Text: timeRange, Reason: "end is not after start"}
	}
	return start, end, nil
}

// ValidTimeRange reports whether timeRange resolves to a window on any day.
func ValidTimeRange(timeRange string) error {
	_, _, err := ResolveWindow(timeRange, time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC))
	return err
}

func parseClock(text string, date time.Time) (time.Time, error) {
	// "8:00 a.m." -> "8:00AM"
	s := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	s = strings.ReplaceAll(s, ".", "")

	if h := leadingNumber(s); h < 1 || h > 12 {
		return time.Time{}, fmt.Errorf("hour of %q must be 1-12", text)
	}
	var clock time.Time
	parsed := false
	for _, layout := range clockLayouts {
		if c, err := time.Parse(layout, s); err == nil {
			clock, parsed = c, true
			break
		}
	}
	if !parsed {
		return time.Time{}, fmt.Errorf("expected h:mm AM/PM, got %q", strings.TrimSpace(text))
	}

	y, m, d := date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}

// leadingNumber returns the digits s starts with, or -1 when there are none.
func leadingNumber(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return -1
	}
	return n
}
