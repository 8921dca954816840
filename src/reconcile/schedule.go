package reconcile

import "time"

// ScheduleIndex answers which duty instances a scholar has on a given date.
// It only holds Active assignments, keyed by scholar and weekday.
type ScheduleIndex struct {
	byScholar map[string]map[time.Weekday][]DutyAssignment
	loc       *time.Location
}

// NewScheduleIndex indexes duties once per computation. Deactivated duties are dropped.
func NewScheduleIndex(duties []DutyAssignment, loc *time.Location) *ScheduleIndex {
	idx := &ScheduleIndex{
		byScholar: make(map[string]map[time.Weekday][]DutyAssignment),
		loc:       loc,
	}
	for _, d := range duties {
		if d.Status != DutyActive {
			continue
		}
		days, ok := idx.byScholar[d.ScholarID]
		if !ok {
			days = make(map[time.Weekday][]DutyAssignment)
			idx.byScholar[d.ScholarID] = days
		}
		days[d.Weekday] = append(days[d.Weekday], d)
	}
	return idx
}

// InstancesFor resolves the scholar's active duties falling on date. Duties whose
// time text does not parse are returned in the second slice instead.
func (idx *ScheduleIndex) InstancesFor(scholarID string, date time.Time) ([]DutyInstance, []Unevaluable) {
	day := DayOf(date, idx.loc)
	assignments := idx.byScholar[scholarID][day.Weekday()]
	if len(assignments) == 0 {
		return nil, nil
	}

	key := day.Format(DateLayout)
	var (
		instances []DutyInstance
		skipped   []Unevaluable
	)
	for _, a := range assignments {
		start, end, err := ResolveWindow(a.TimeRange, day)
		if err != nil {
			skipped = append(skipped, Unevaluable{
				ScholarID: scholarID,
				Date:      key,
				TimeRange: a.TimeRange,
				Location:  a.Location,
				Reason:    err.Error(),
			})
			continue
		}
		instances = append(instances, DutyInstance{
			ScholarID: scholarID,
			Date:      key,
			Start:     start,
			End:       end,
			Location:  a.Location,
		})
	}
	return instances, skipped
}
