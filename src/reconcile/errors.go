package reconcile

import (
	"fmt"
	"time"
)

// MalformedScheduleError is returned when a duty's time text cannot be turned
// into a non-empty start/end window.
type MalformedScheduleError struct {
	Text   string
	Reason string
}

func (e *MalformedScheduleError) Error() string {
	return fmt.Sprintf("malformed schedule %q: %s", e.Text, e.Reason)
}

// EmptyRangeError is returned when a range starts after it ends.
type EmptyRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("empty range: start %s is after end %s", e.Start.Format(DateLayout), e.End.Format(DateLayout))
}

// AmbiguousMatchWarning is raised when more than one attendance event satisfies
// the same duty instance. The first event in input order is used.
type AmbiguousMatchWarning struct {
	Instance DutyInstance `json:"instance"`
	Matches  int          `json:"matches"`
}

func (w AmbiguousMatchWarning) String() string {
	return fmt.Sprintf("%d check-outs satisfy duty of %s on %s at %s", w.Matches, w.Instance.ScholarID, w.Instance.Date, w.Instance.Location)
}
