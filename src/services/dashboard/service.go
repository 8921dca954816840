// Package dashboard serves the admin, checker and facilitator dashboards from
// the reconciliation engine.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
	"scholar-duty-backend/src/services/snapshot"
)

const (
	// CachePrefix is shared by every cached dashboard result.
	CachePrefix = "dashboard:"
	SummaryKey  = CachePrefix + "summary"
	ratePrefix  = CachePrefix + "rate:"
)

// Cache is the JSON cache the service writes results to. utils.RedisCache
// satisfies it.
type Cache interface {
	GetJSON(ctx context.Context, key string, out interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type Service struct {
	source snapshot.Source
	cache  Cache
	engine *reconcile.Engine
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(source snapshot.Source, cache Cache, engine *reconcile.Engine, ttl time.Duration, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		source: source,
		cache:  cache,
		engine: engine,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location is the engine's time zone, used to parse request dates.
func (s *Service) Location() *time.Location { return s.engine.Location() }

// Rate computes the attendance rate over [start, end]. Ranges that ended before
// today are served from cache when possible since they can no longer change
// except through new attendance writes, which invalidate the cache.
func (s *Service) Rate(ctx context.Context, start, end time.Time) (reconcile.RateResult, error) {
	now := s.now()
	loc := s.engine.Location()
	first, last := reconcile.DayOf(start, loc), reconcile.DayOf(end, loc)
	if first.After(last) {
		return reconcile.RateResult{}, &reconcile.EmptyRangeError{Start: first, End: last}
	}

	closed := last.Before(reconcile.DayOf(now, loc))
	key := ratePrefix + first.Format(reconcile.DateLayout) + ":" + last.Format(reconcile.DateLayout)
	if closed {
		var cached reconcile.RateResult
		if found, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	snap, err := s.source.Fetch(ctx, start, end)
	if err != nil {
		return reconcile.RateResult{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	res, err := s.engine.RateForRange(snap, start, end, now)
	if err != nil {
		return reconcile.RateResult{}, err
	}
	s.report(res)

	if closed {
		if err := s.cache.SetJSON(ctx, key, res, s.ttl); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return res, nil
}

// Daily returns one rate per date of [start, end].
func (s *Service) Daily(ctx context.Context, start, end time.Time) ([]reconcile.RateResult, error) {
	snap, err := s.source.Fetch(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	return s.engine.DailyRates(snap, start, end, s.now())
}

// Scholars returns one rate per scholar over [start, end].
func (s *Service) Scholars(ctx context.Context, start, end time.Time) ([]reconcile.ScholarRate, error) {
	snap, err := s.source.Fetch(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	return s.engine.ScholarRates(snap, start, end, s.now())
}

// TodayStatus evaluates one scholar's duties for today.
func (s *Service) TodayStatus(ctx context.Context, scholarID string) (models.TodayStatus, error) {
	now := s.now()
	snap, err := s.source.Fetch(ctx, now, now)
	if err != nil {
		return models.TodayStatus{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	duties, skipped := s.engine.StatusForToday(snap, scholarID, now)
	for _, u := range skipped {
		s.logger.Warn("unevaluable duty", zap.String("scholarId", u.ScholarID), zap.String("time", u.TimeRange), zap.String("reason", u.Reason))
	}
	return models.TodayStatus{
		ScholarID:   scholarID,
		Date:        reconcile.DateKey(now, s.engine.Location()),
		Duties:      duties,
		Unevaluable: skipped,
	}, nil
}

// Trends compares this week with last week and this month with last month.
func (s *Service) Trends(ctx context.Context) (models.Trends, error) {
	now := s.now()
	from, to := trendWindow(now, s.engine.Location())

	snap, err := s.source.Fetch(ctx, from, to)
	if err != nil {
		return models.Trends{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	return s.trends(snap, now)
}

// Summary builds everything the dashboards show on load from one snapshot.
func (s *Service) Summary(ctx context.Context) (models.Summary, error) {
	now := s.now()
	from, to := trendWindow(now, s.engine.Location())

	snap, err := s.source.Fetch(ctx, from, to)
	if err != nil {
		return models.Summary{}, fmt.Errorf("fetch snapshot: %w", err)
	}

	trends, err := s.trends(snap, now)
	if err != nil {
		return models.Summary{}, err
	}
	today, err := s.engine.RateForRange(snap, now, now, now)
	if err != nil {
		return models.Summary{}, err
	}
	s.report(today)

	sum := models.Summary{
		GeneratedAt:  now.In(s.engine.Location()).Format(time.RFC3339),
		Today:        today,
		Week:         trends.Week.Current,
		Month:        trends.Month.Current,
		Trends:       trends,
		Checkers:     []models.DutyRow{},
		Facilitators: []models.DutyRow{},
		Unevaluable:  today.Unevaluable,
	}
	for _, sc := range reconcile.UniqueScholars(snap.Scholars) {
		duties, _ := s.engine.StatusForToday(snap, sc.ID, now)
		for _, d := range duties {
			row := models.DutyRow{ScholarID: sc.ID, Name: sc.Name, Duty: d}
			if d.Instance.Location == reconcile.NoRoom {
				sum.Checkers = append(sum.Checkers, row)
			} else {
				sum.Facilitators = append(sum.Facilitators, row)
			}
		}
	}
	return sum, nil
}

// CachedSummary returns the summary stored by the background refresh, or
// computes one when nothing is stored.
func (s *Service) CachedSummary(ctx context.Context) (models.Summary, error) {
	var sum models.Summary
	found, err := s.cache.GetJSON(ctx, SummaryKey, &sum)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.String("key", SummaryKey), zap.Error(err))
	}
	if found {
		return sum, nil
	}
	return s.RefreshSummary(ctx)
}

// RefreshSummary recomputes the summary and stores it.
func (s *Service) RefreshSummary(ctx context.Context) (models.Summary, error) {
	sum, err := s.Summary(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	if err := s.cache.SetJSON(ctx, SummaryKey, sum, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", SummaryKey), zap.Error(err))
	}
	return sum, nil
}

// Invalidate drops every cached dashboard result. Called after attendance or
// duty writes.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, CachePrefix); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) trends(snap reconcile.Snapshot, now time.Time) (models.Trends, error) {
	loc := s.engine.Location()
	weekStart, weekEnd := reconcile.WeekRange(now, loc)
	priorWeekStart, priorWeekEnd := reconcile.PriorRange(weekStart, weekEnd, loc)
	monthStart, monthEnd := reconcile.MonthRange(now, loc)
	priorMonthStart, priorMonthEnd := reconcile.PriorMonthRange(now, loc)

	week, err := s.period(snap, now, weekStart, weekEnd, priorWeekStart, priorWeekEnd)
	if err != nil {
		return models.Trends{}, err
	}
	month, err := s.period(snap, now, monthStart, monthEnd, priorMonthStart, priorMonthEnd)
	if err != nil {
		return models.Trends{}, err
	}
	return models.Trends{Week: week, Month: month}, nil
}

func (s *Service) period(snap reconcile.Snapshot, now, start, end, priorStart, priorEnd time.Time) (models.PeriodTrend, error) {
	current, err := s.engine.RateForRange(snap, start, end, now)
	if err != nil {
		return models.PeriodTrend{}, err
	}
	prior, err := s.engine.RateForRange(snap, priorStart, priorEnd, now)
	if err != nil {
		return models.PeriodTrend{}, err
	}
	return models.PeriodTrend{
		Current:    current,
		Prior:      prior,
		Comparison: reconcile.CompareRanges(current, prior),
	}, nil
}

// report logs the diagnostics the engine collected for a range.
func (s *Service) report(res reconcile.RateResult) {
	for _, u := range res.Unevaluable {
		s.logger.Warn("unevaluable duty",
			zap.String("scholarId", u.ScholarID),
			zap.String("date", u.Date),
			zap.String("time", u.TimeRange),
			zap.String("reason", u.Reason))
	}
	for _, w := range res.Warnings {
		s.logger.Warn("ambiguous attendance match", zap.String("detail", w.String()))
	}
}

// trendWindow spans every date the week and month comparisons touch.
func trendWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	weekStart, weekEnd := reconcile.WeekRange(now, loc)
	priorWeekStart, _ := reconcile.PriorRange(weekStart, weekEnd, loc)
	priorMonthStart, _ := reconcile.PriorMonthRange(now, loc)
	_, monthEnd := reconcile.MonthRange(now, loc)

	from, to := priorMonthStart, monthEnd
	if priorWeekStart.Before(from) {
		from = priorWeekStart
	}
	if weekEnd.After(to) {
		to = weekEnd
	}
	return from, to
}
