package reconcile

import "time"

var pht = time.FixedZone("PHT", 8*60*60)

// 2026-10-12 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, pht)
}

func ptr(t time.Time) *time.Time { return &t }

func mondayDuty(scholarID, timeRange, room string) DutyAssignment {
	return DutyAssignment{
		ScholarID: scholarID,
		Weekday:   time.Monday,
		TimeRange: timeRange,
		Location:  room,
		Status:    DutyActive,
	}
}

func scholars(ids ...string) []Scholar {
	out := make([]Scholar, 0, len(ids))
	for _, id := range ids {
		out = append(out, Scholar{ID: id, Name: "Scholar " + id})
	}
	return out
}
