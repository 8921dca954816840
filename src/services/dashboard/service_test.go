package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scholar-duty-backend/src/reconcile"
	"scholar-duty-backend/src/services/snapshot"
)

var pht = time.FixedZone("PHT", 8*60*60)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, pht)
}

// memCache keeps JSON in a map, like Redis would.
type memCache struct {
	data    map[string][]byte
	failGet bool
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) GetJSON(_ context.Context, key string, out interface{}) (bool, error) {
	if m.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, v interface{}, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) DeletePrefix(_ context.Context, prefix string) error {
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func testSnapshot() reconcile.Snapshot {
	out := at(12, 17, 5)
	return reconcile.Snapshot{
		Scholars: []reconcile.Scholar{{ID: "S-1", Name: "Ana"}, {ID: "S-2", Name: "Ben"}},
		Duties: []reconcile.DutyAssignment{
			{ScholarID: "S-1", Weekday: time.Monday, TimeRange: "8:00 AM - 5:00 PM", Location: "201", Status: reconcile.DutyActive},
			{ScholarID: "S-1", Weekday: time.Tuesday, TimeRange: "8:00 AM - 12:00 PM", Location: "201", Status: reconcile.DutyActive},
			{ScholarID: "S-2", Weekday: time.Tuesday, TimeRange: "9:00 AM - 5:00 PM", Location: reconcile.NoRoom, Status: reconcile.DutyActive},
		},
		Events: []reconcile.AttendanceEvent{
			{ScholarID: "S-1", CheckIn: at(12, 7, 50), CheckOut: &out, Location: "201"},
		},
	}
}

// Tuesday 2026-10-13, 14:00
func newTestService(src snapshot.Source, cache Cache) *Service {
	return NewService(src, cache, reconcile.New(pht), time.Hour, zap.NewNop(),
		WithClock(func() time.Time { return at(13, 14, 0) }))
}

func TestRateCachesClosedRanges(t *testing.T) {
	src := &snapshot.Static{Snapshot: testSnapshot()}
	cache := newMemCache()
	svc := newTestService(src, cache)

	first, err := svc.Rate(context.Background(), at(12, 0, 0), at(12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 100.0, first.Rate)
	assert.Contains(t, cache.data, "dashboard:rate:2026-10-12:2026-10-12")

	second, err := svc.Rate(context.Background(), at(12, 0, 0), at(12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.Calls)

	svc.Invalidate(context.Background())
	assert.Empty(t, cache.data)
}

func TestRateDoesNotCacheRangesTouchingToday(t *testing.T) {
	src := &snapshot.Static{Snapshot: testSnapshot()}
	cache := newMemCache()
	svc := newTestService(src, cache)

	res, err := svc.Rate(context.Background(), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalExpected)
	assert.Equal(t, 1, res.TotalPresent)
	assert.Equal(t, 1, res.TotalPending)
	assert.Empty(t, cache.data)

	_, err = svc.Rate(context.Background(), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, src.Calls)
}

func TestRateCacheFailureFallsThrough(t *testing.T) {
	src := &snapshot.Static{Snapshot: testSnapshot()}
	cache := newMemCache()
	cache.failGet = true
	svc := newTestService(src, cache)

	res, err := svc.Rate(context.Background(), at(12, 0, 0), at(12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPresent)
}

func TestRateRejectsInvertedRangeBeforeFetching(t *testing.T) {
	src := &snapshot.Static{Snapshot: testSnapshot()}
	svc := newTestService(src, newMemCache())

	_, err := svc.Rate(context.Background(), at(13, 0, 0), at(12, 0, 0))
	var empty *reconcile.EmptyRangeError
	assert.True(t, errors.As(err, &empty))
	assert.Equal(t, 0, src.Calls)
}

func TestFetchErrorIsReturned(t *testing.T) {
	src := &snapshot.Static{Err: errors.New("mongo down")}
	svc := newTestService(src, newMemCache())

	_, err := svc.Rate(context.Background(), at(12, 0, 0), at(12, 0, 0))
	assert.ErrorContains(t, err, "mongo down")
	_, err = svc.Summary(context.Background())
	assert.Error(t, err)
	_, err = svc.TodayStatus(context.Background(), "S-1")
	assert.Error(t, err)
}

func TestTodayStatus(t *testing.T) {
	svc := newTestService(&snapshot.Static{Snapshot: testSnapshot()}, newMemCache())

	st, err := svc.TodayStatus(context.Background(), "S-2")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-13", st.Date)
	require.Len(t, st.Duties, 1)
	assert.Equal(t, reconcile.Pending, st.Duties[0].Status)
}

func TestTrends(t *testing.T) {
	svc := newTestService(&snapshot.Static{Snapshot: testSnapshot()}, newMemCache())

	tr, err := svc.Trends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", tr.Week.Current.Start)
	assert.Equal(t, "2026-10-05", tr.Week.Prior.Start)
	assert.Equal(t, 3, tr.Week.Current.TotalExpected)
	assert.InDelta(t, 33.33, tr.Week.Current.Rate, 0.01)
	assert.Equal(t, 0.0, tr.Week.Prior.Rate)
	assert.Equal(t, "+33.3%", tr.Week.Comparison.Formatted)
	assert.Equal(t, "2026-09-01", tr.Month.Prior.Start)
	assert.Equal(t, "2026-09-30", tr.Month.Prior.End)
}

func TestSummaryAndBackgroundRefresh(t *testing.T) {
	src := &snapshot.Static{Snapshot: testSnapshot()}
	cache := newMemCache()
	svc := newTestService(src, cache)

	sum, err := svc.CachedSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.Facilitators, 1)
	assert.Equal(t, "S-1", sum.Facilitators[0].ScholarID)
	assert.Equal(t, reconcile.Absent, sum.Facilitators[0].Duty.Status)
	require.Len(t, sum.Checkers, 1)
	assert.Equal(t, "Ben", sum.Checkers[0].Name)
	assert.Equal(t, reconcile.Pending, sum.Checkers[0].Duty.Status)
	assert.Equal(t, 2, sum.Today.TotalExpected)
	assert.Contains(t, cache.data, SummaryKey)

	calls := src.Calls
	again, err := svc.CachedSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, src.Calls)
	assert.Equal(t, sum.GeneratedAt, again.GeneratedAt)
}

func TestSummaryListsDuplicatedScholarOnce(t *testing.T) {
	snap := testSnapshot()
	snap.Scholars = append(snap.Scholars, reconcile.Scholar{ID: "S-2", Name: "Ben again"})
	svc := newTestService(&snapshot.Static{Snapshot: snap}, newMemCache())

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, sum.Checkers, 1)
	assert.Equal(t, "Ben", sum.Checkers[0].Name)
	assert.Len(t, sum.Facilitators, 1)
}

func TestDailyAndScholars(t *testing.T) {
	svc := newTestService(&snapshot.Static{Snapshot: testSnapshot()}, newMemCache())

	daily, err := svc.Daily(context.Background(), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, 100.0, daily[0].Rate)

	rates, err := svc.Scholars(context.Background(), at(12, 0, 0), at(13, 0, 0))
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "Ana", rates[0].Name)
	assert.Equal(t, 50.0, rates[0].Result.Rate)
}
