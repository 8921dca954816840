package reconcile

import "time"

// Evaluation is the status of one duty instance plus any warning raised while
// deciding it.
type Evaluation struct {
	Instance     DutyInstance           `json:"instance"`
	Status       Status                 `json:"status"`
	CheckedOutAt *time.Time             `json:"checkedOutAt,omitempty"`
	Warning      *AmbiguousMatchWarning `json:"warning,omitempty"`
}

// Evaluate decides the status of inst at now from its matched events.
//
// A duty is Pending until its end has passed. After that it is Present only if
// some matched event checked out strictly after the scheduled end; a missing
// check-out or an early one is Absent. When several events qualify the first
// one wins and a warning is attached.
func Evaluate(inst DutyInstance, matched []AttendanceEvent, now time.Time) Evaluation {
	res := Evaluation{Instance: inst, Status: Pending}
	if now.Before(inst.End) {
		return res
	}

	satisfied := 0
	for _, ev := range matched {
		if ev.CheckOut == nil || !ev.CheckOut.After(inst.End) {
			continue
		}
		satisfied++
		if satisfied == 1 {
			out := *ev.CheckOut
			res.CheckedOutAt = &out
		}
	}

	if satisfied == 0 {
		res.Status = Absent
		return res
	}
	res.Status = Present
	if satisfied > 1 {
		res.Warning = &AmbiguousMatchWarning{Instance: inst, Matches: satisfied}
	}
	return res
}
