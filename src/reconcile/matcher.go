package reconcile

import "time"

// MatchEvents returns the events that could satisfy inst: same scholar, same
// location, checked in on the instance's date. Input order is kept.
//
// There is no stored link between a check-in and a duty, so two duties of one
// scholar in the same room on the same day share the same matches.
func MatchEvents(inst DutyInstance, events []AttendanceEvent, loc *time.Location) []AttendanceEvent {
	var matched []AttendanceEvent
	for _, ev := range events {
		if ev.ScholarID == inst.ScholarID && ev.Location == inst.Location && DateKey(ev.CheckIn, loc) == inst.Date {
			matched = append(matched, ev)
		}
	}
	return matched
}

// eventIndex groups events by scholar and check-in date so that range
// evaluation does not rescan every event per instance.
type eventIndex struct {
	byKey map[string][]AttendanceEvent
	loc   *time.Location
}

func newEventIndex(events []AttendanceEvent, loc *time.Location) *eventIndex {
	idx := &eventIndex{byKey: make(map[string][]AttendanceEvent), loc: loc}
	for _, ev := range events {
		k := ev.ScholarID + "|" + DateKey(ev.CheckIn, loc)
		idx.byKey[k] = append(idx.byKey[k], ev)
	}
	return idx
}

func (idx *eventIndex) match(inst DutyInstance) []AttendanceEvent {
	return MatchEvents(inst, idx.byKey[inst.ScholarID+"|"+inst.Date], idx.loc)
}
