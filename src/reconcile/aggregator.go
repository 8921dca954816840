package reconcile

import "time"

// RateResult is the rolled-up outcome of evaluating every duty instance in a
// date range. Unevaluable instances are counted in neither total.
type RateResult struct {
	Start         string                  `json:"start"`
	End           string                  `json:"end"`
	TotalExpected int                     `json:"totalExpected"`
	TotalPresent  int                     `json:"totalPresent"`
	TotalAbsent   int                     `json:"totalAbsent"`
	TotalPending  int                     `json:"totalPending"`
	Rate          float64                 `json:"rate"`
	Unevaluable   []Unevaluable           `json:"unevaluable,omitempty"`
	Warnings      []AmbiguousMatchWarning `json:"warnings,omitempty"`
}

// ScholarRate is a RateResult scoped to one scholar.
type ScholarRate struct {
	ScholarID string     `json:"scholarId"`
	Name      string     `json:"name"`
	Result    RateResult `json:"result"`
}

// dayEvaluation is everything decided for one scholar on one date.
type dayEvaluation struct {
	scholarID   string
	date        string
	evaluations []Evaluation
	skipped     []Unevaluable
}

// Rate returns present/expected as a percentage clamped to [0, 100].
// An empty denominator yields 0.
func Rate(present, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	r := float64(present) / float64(expected) * 100
	switch {
	case r < 0:
		return 0
	case r > 100:
		return 100
	}
	return r
}

// days lists every calendar date in [start, end], both normalized to loc.
func days(start, end time.Time, loc *time.Location) ([]time.Time, error) {
	first, last := DayOf(start, loc), DayOf(end, loc)
	if first.After(last) {
		return nil, &EmptyRangeError{Start: first, End: last}
	}
	var out []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out, nil
}

// UniqueScholars keeps the first occurrence of each scholar id.
func UniqueScholars(scholars []Scholar) []Scholar {
	seen := make(map[string]bool, len(scholars))
	out := make([]Scholar, 0, len(scholars))
	for _, s := range scholars {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

func (e *Engine) evaluateRange(snap Snapshot, start, end, now time.Time) ([]dayEvaluation, error) {
	dates, err := days(start, end, e.loc)
	if err != nil {
		return nil, err
	}

	schedule := NewScheduleIndex(snap.Duties, e.loc)
	events := newEventIndex(snap.Events, e.loc)
	scholars := UniqueScholars(snap.Scholars)

	var out []dayEvaluation
	for _, d := range dates {
		for _, s := range scholars {
			instances, skipped := schedule.InstancesFor(s.ID, d)
			if len(instances) == 0 && len(skipped) == 0 {
				continue
			}
			de := dayEvaluation{scholarID: s.ID, date: d.Format(DateLayout), skipped: skipped}
			for _, inst := range instances {
				de.evaluations = append(de.evaluations, Evaluate(inst, events.match(inst), now))
			}
			out = append(out, de)
		}
	}
	return out, nil
}

// fold rolls day evaluations into a RateResult for [start, end].
func fold(start, end string, evaluated []dayEvaluation) RateResult {
	res := RateResult{Start: start, End: end}
	for _, de := range evaluated {
		res.Unevaluable = append(res.Unevaluable, de.skipped...)
		for _, ev := range de.evaluations {
			res.TotalExpected++
			switch ev.Status {
			case Present:
				res.TotalPresent++
			case Absent:
				res.TotalAbsent++
			case Pending:
				res.TotalPending++
			}
			if ev.Warning != nil {
				res.Warnings = append(res.Warnings, *ev.Warning)
			}
		}
	}
	res.Rate = Rate(res.TotalPresent, res.TotalExpected)
	return res
}
