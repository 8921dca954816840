package reconcile

import "time"

// DutyStatus is the lifecycle state of a duty assignment.
type DutyStatus string

const (
	DutyActive      DutyStatus = "Active"
	DutyDeactivated DutyStatus = "Deactivated"
)

// NoRoom is the location used by checker duties that are not tied to a room.
const NoRoom = "N/A"

// Scholar is only used to enumerate whose duties get evaluated.
type Scholar struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// DutyAssignment is a recurring weekly duty slot.
type DutyAssignment struct {
	ScholarID string
	Weekday   time.Weekday
	TimeRange string
	Location  string
	Status    DutyStatus
}

// AttendanceEvent is one check-in, optionally closed by a check-out.
type AttendanceEvent struct {
	ScholarID string
	CheckIn   time.Time
	CheckOut  *time.Time
	Location  string
}

// DutyInstance is a DutyAssignment materialized on one calendar date.
type DutyInstance struct {
	ScholarID string    `json:"scholarId"`
	Date      string    `json:"date"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Location  string    `json:"location"`
}

// Status is the outcome of evaluating a DutyInstance.
type Status string

const (
	Pending Status = "Pending"
	Present Status = "Present"
	Absent  Status = "Absent"
)

// Snapshot is the set of collections one computation runs against.
// It is treated as read-only.
type Snapshot struct {
	Scholars []Scholar
	Duties   []DutyAssignment
	Events   []AttendanceEvent
}

// Unevaluable records a duty occurrence that could not be resolved to a window.
type Unevaluable struct {
	ScholarID string `json:"scholarId"`
	Date      string `json:"date"`
	TimeRange string `json:"timeRange"`
	Location  string `json:"location"`
	Reason    string `json:"reason"`
}
