// Package reconcile derives duty fulfillment from weekly duty schedules and raw
// check-in/check-out events.
//
// Every entry point takes an explicit evaluation clock and a Snapshot, and
// never mutates either. The same inputs always give the same outputs.
package reconcile

import "time"

// Engine evaluates snapshots in a fixed time zone. Calendar dates, weekdays and
// the date of a check-in are all taken in that zone.
type Engine struct {
	loc *time.Location
}

func New(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{loc: loc}
}

func (e *Engine) Location() *time.Location { return e.loc }

// RateForRange evaluates every scholar's duty instances over [start, end]
// (inclusive) at now.
func (e *Engine) RateForRange(snap Snapshot, start, end, now time.Time) (RateResult, error) {
	evaluated, err := e.evaluateRange(snap, start, end, now)
	if err != nil {
		return RateResult{}, err
	}
	return fold(DateKey(start, e.loc), DateKey(end, e.loc), evaluated), nil
}

// DailyRates returns one RateResult per date of [start, end].
func (e *Engine) DailyRates(snap Snapshot, start, end, now time.Time) ([]RateResult, error) {
	evaluated, err := e.evaluateRange(snap, start, end, now)
	if err != nil {
		return nil, err
	}
	dates, _ := days(start, end, e.loc)

	byDate := make(map[string][]dayEvaluation, len(dates))
	for _, de := range evaluated {
		byDate[de.date] = append(byDate[de.date], de)
	}
	out := make([]RateResult, 0, len(dates))
	for _, d := range dates {
		key := d.Format(DateLayout)
		out = append(out, fold(key, key, byDate[key]))
	}
	return out, nil
}

// ScholarRates returns one RateResult per scholar over [start, end], in the
// order of the snapshot's scholar list.
func (e *Engine) ScholarRates(snap Snapshot, start, end, now time.Time) ([]ScholarRate, error) {
	evaluated, err := e.evaluateRange(snap, start, end, now)
	if err != nil {
		return nil, err
	}

	byScholar := make(map[string][]dayEvaluation)
	for _, de := range evaluated {
		byScholar[de.scholarID] = append(byScholar[de.scholarID], de)
	}
	startKey, endKey := DateKey(start, e.loc), DateKey(end, e.loc)
	scholars := UniqueScholars(snap.Scholars)
	out := make([]ScholarRate, 0, len(scholars))
	for _, s := range scholars {
		out = append(out, ScholarRate{
			ScholarID: s.ID,
			Name:      s.Name,
			Result:    fold(startKey, endKey, byScholar[s.ID]),
		})
	}
	return out, nil
}

// StatusForDate evaluates one scholar's duty instances on date at now.
func (e *Engine) StatusForDate(snap Snapshot, scholarID string, date, now time.Time) ([]Evaluation, []Unevaluable) {
	schedule := NewScheduleIndex(snap.Duties, e.loc)
	instances, skipped := schedule.InstancesFor(scholarID, date)

	out := make([]Evaluation, 0, len(instances))
	for _, inst := range instances {
		out = append(out, Evaluate(inst, MatchEvents(inst, snap.Events, e.loc), now))
	}
	return out, skipped
}

// StatusForToday is StatusForDate for the calendar day of now.
func (e *Engine) StatusForToday(snap Snapshot, scholarID string, now time.Time) ([]Evaluation, []Unevaluable) {
	return e.StatusForDate(snap, scholarID, now, now)
}
