package reconcile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSnapshot(events ...AttendanceEvent) Snapshot {
	return Snapshot{
		Scholars: scholars("S-1"),
		Duties:   []DutyAssignment{mondayDuty("S-1", "8:00AM - 5:00PM", "201")},
		Events:   events,
	}
}

func TestScenarioPresent(t *testing.T) {
	e := New(pht)
	snap := scenarioSnapshot(AttendanceEvent{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: ptr(at(12, 17, 5)), Location: "201"})
	tuesday := at(13, 10, 0)

	statuses, skipped := e.StatusForDate(snap, "S-1", at(12, 0, 0), tuesday)
	assert.Empty(t, skipped)
	require.Len(t, statuses, 1)
	assert.Equal(t, Present, statuses[0].Status)

	res, err := e.RateForRange(snap, at(12, 0, 0), at(12, 0, 0), tuesday)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalExpected)
	assert.Equal(t, 1, res.TotalPresent)
	assert.Equal(t, 100.0, res.Rate)
	assert.Equal(t, "2026-10-12", res.Start)
	assert.Equal(t, "2026-10-12", res.End)
}

func TestScenarioAbsentWithoutEvents(t *testing.T) {
	e := New(pht)
	snap := scenarioSnapshot()

	statuses, _ := e.StatusForDate(snap, "S-1", at(12, 0, 0), at(13, 10, 0))
	require.Len(t, statuses, 1)
	assert.Equal(t, Absent, statuses[0].Status)

	res, err := e.RateForRange(snap, at(12, 0, 0), at(12, 0, 0), at(13, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalExpected)
	assert.Equal(t, 0, res.TotalPresent)
	assert.Equal(t, 1, res.TotalAbsent)
	assert.Equal(t, 0.0, res.Rate)
}

func TestScenarioPendingMidShift(t *testing.T) {
	e := New(pht)
	snap := scenarioSnapshot(AttendanceEvent{ScholarID: "S-1", CheckIn: at(12, 7, 50), Location: "201"})
	now := at(12, 14, 0)

	statuses, _ := e.StatusForToday(snap, "S-1", now)
	require.Len(t, statuses, 1)
	assert.Equal(t, Pending, statuses[0].Status)

	res, err := e.RateForRange(snap, at(12, 0, 0), at(12, 0, 0), now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalExpected)
	assert.Equal(t, 0, res.TotalPresent)
	assert.Equal(t, 1, res.TotalPending)
	assert.Equal(t, 0, res.TotalAbsent)
}

func TestScenarioEarlyCheckoutIsAbsent(t *testing.T) {
	e := New(pht)
	snap := scenarioSnapshot(AttendanceEvent{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: ptr(at(12, 16, 55)), Location: "201"})

	statuses, _ := e.StatusForDate(snap, "S-1", at(12, 0, 0), at(13, 0, 0))
	require.Len(t, statuses, 1)
	assert.Equal(t, Absent, statuses[0].Status)
}

func TestScenarioMalformedScheduleExcluded(t *testing.T) {
	e := New(pht)
	snap := Snapshot{
		Scholars: scholars("S-1"),
		Duties: []DutyAssignment{
			mondayDuty("S-1", "8:00-", "201"),
			mondayDuty("S-1", "6:00 PM - 7:00 PM", "305"),
		},
		Events: []AttendanceEvent{{ScholarID: "S-1", CheckIn: at(12, 17, 55), CheckOut: ptr(at(12, 19, 1)), Location: "305"}},
	}

	res, err := e.RateForRange(snap, at(12, 0, 0), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalExpected)
	assert.Equal(t, 1, res.TotalPresent)
	require.Len(t, res.Unevaluable, 1)
	assert.Equal(t, "8:00-", res.Unevaluable[0].TimeRange)

	_, skipped := e.StatusForDate(snap, "S-1", at(12, 0, 0), at(13, 0, 0))
	assert.Len(t, skipped, 1)
}

func TestRateForRangeRejectsInvertedRange(t *testing.T) {
	e := New(pht)
	_, err := e.RateForRange(scenarioSnapshot(), at(14, 0, 0), at(12, 0, 0), at(15, 0, 0))

	var empty *EmptyRangeError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "2026-10-14", empty.Start.Format(DateLayout))

	_, err = e.DailyRates(scenarioSnapshot(), at(14, 0, 0), at(12, 0, 0), at(15, 0, 0))
	assert.Error(t, err)
	_, err = e.ScholarRates(scenarioSnapshot(), at(14, 0, 0), at(12, 0, 0), at(15, 0, 0))
	assert.Error(t, err)
}

func TestRateIsZeroWithoutExpectedDuties(t *testing.T) {
	e := New(pht)
	res, err := e.RateForRange(scenarioSnapshot(), at(13, 0, 0), at(17, 0, 0), at(20, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalExpected)
	assert.Equal(t, 0.0, res.Rate)

	assert.Equal(t, 0.0, Rate(0, 0))
	assert.Equal(t, 100.0, Rate(5, 4))
	assert.Equal(t, 50.0, Rate(1, 2))
}

func TestDeactivatedAndUnlistedScholarsIgnored(t *testing.T) {
	e := New(pht)
	snap := Snapshot{
		Scholars: scholars("S-1", "S-1"),
		Duties: []DutyAssignment{
			mondayDuty("S-1", "8:00 AM - 5:00 PM", "201"),
			{ScholarID: "S-1", Weekday: time.Monday, TimeRange: "6:00 PM - 8:00 PM", Location: "201", Status: DutyDeactivated},
			mondayDuty("S-404", "8:00 AM - 5:00 PM", "201"),
		},
	}

	res, err := e.RateForRange(snap, at(12, 0, 0), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalExpected)
}

func TestRateForRangeIsIdempotent(t *testing.T) {
	e := New(pht)
	snap := Snapshot{
		Scholars: scholars("S-1", "S-2"),
		Duties: []DutyAssignment{
			mondayDuty("S-1", "8:00 AM - 5:00 PM", "201"),
			mondayDuty("S-2", "8:00 AM - 12:00 PM", NoRoom),
			{ScholarID: "S-2", Weekday: time.Wednesday, TimeRange: "1:00 PM - 3:00 PM", Location: "410", Status: DutyActive},
		},
		Events: []AttendanceEvent{
			{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: ptr(at(12, 17, 5)), Location: "201"},
			{ScholarID: "S-2", CheckIn: at(14, 12, 50), CheckOut: ptr(at(14, 15, 30)), Location: "410"},
		},
	}
	before := len(snap.Events)

	first, err := e.RateForRange(snap, at(12, 0, 0), at(18, 0, 0), at(19, 0, 0))
	require.NoError(t, err)
	second, err := e.RateForRange(snap, at(12, 0, 0), at(18, 0, 0), at(19, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, len(snap.Events))
	assert.Equal(t, 3, first.TotalExpected)
	assert.Equal(t, 2, first.TotalPresent)
	assert.InDelta(t, 66.67, first.Rate, 0.01)
}

func TestAppendingMissedDayLowersFullRate(t *testing.T) {
	e := New(pht)
	snap := scenarioSnapshot(AttendanceEvent{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: ptr(at(12, 17, 5)), Location: "201"})
	now := at(25, 0, 0)

	full, err := e.RateForRange(snap, at(12, 0, 0), at(18, 0, 0), now)
	require.NoError(t, err)
	assert.Equal(t, 100.0, full.Rate)

	// The next Monday (19th) has no attendance.
	extended, err := e.RateForRange(snap, at(12, 0, 0), at(19, 0, 0), now)
	require.NoError(t, err)
	assert.Less(t, extended.Rate, full.Rate)
	assert.Equal(t, 50.0, extended.Rate)
}

func TestPastDatesAreNeverPending(t *testing.T) {
	e := New(pht)
	snap := Snapshot{
		Scholars: scholars("S-1"),
		Duties: []DutyAssignment{
			mondayDuty("S-1", "8:00 AM - 11:59 PM", "201"),
			{ScholarID: "S-1", Weekday: time.Thursday, TimeRange: "7:00 AM - 9:00 AM", Location: "201", Status: DutyActive},
		},
	}
	res, err := e.RateForRange(snap, at(1, 0, 0), at(16, 0, 0), at(17, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalPending)
	assert.Equal(t, res.TotalExpected, res.TotalAbsent)
}

func TestDailyAndScholarRates(t *testing.T) {
	e := New(pht)
	snap := Snapshot{
		Scholars: scholars("S-1", "S-2"),
		Duties: []DutyAssignment{
			mondayDuty("S-1", "8:00 AM - 5:00 PM", "201"),
			{ScholarID: "S-2", Weekday: time.Tuesday, TimeRange: "8:00 AM - 10:00 AM", Location: NoRoom, Status: DutyActive},
		},
		Events: []AttendanceEvent{
			{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: ptr(at(12, 17, 5)), Location: "201"},
		},
	}
	now := at(14, 0, 0)

	daily, err := e.DailyRates(snap, at(12, 0, 0), at(14, 0, 0), now)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "2026-10-12", daily[0].Start)
	assert.Equal(t, 100.0, daily[0].Rate)
	assert.Equal(t, 1, daily[1].TotalAbsent)
	assert.Equal(t, 0, daily[2].TotalExpected)

	perScholar, err := e.ScholarRates(snap, at(12, 0, 0), at(14, 0, 0), now)
	require.NoError(t, err)
	require.Len(t, perScholar, 2)
	assert.Equal(t, "S-1", perScholar[0].ScholarID)
	assert.Equal(t, 100.0, perScholar[0].Result.Rate)
	assert.Equal(t, "S-2", perScholar[1].ScholarID)
	assert.Equal(t, 0.0, perScholar[1].Result.Rate)
	assert.Equal(t, 1, perScholar[1].Result.TotalExpected)
}

func TestAmbiguousMatchSurfacesWarning(t *testing.T) {
	e := New(pht)
	snap := scenarioSnapshot(
		AttendanceEvent{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: ptr(at(12, 17, 5)), Location: "201"},
		AttendanceEvent{ScholarID: "S-1", CheckIn: at(12, 17, 10), CheckOut: ptr(at(12, 17, 20)), Location: "201"},
	)

	res, err := e.RateForRange(snap, at(12, 0, 0), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPresent)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 2, res.Warnings[0].Matches)
}
