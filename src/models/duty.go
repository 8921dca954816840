package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholar-duty-backend/src/reconcile"
)

// Duty recurring weekly duty slot of a scholar.
type Duty struct {
	DocID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ScholarID string             `bson:"id" json:"id"`
	Day       string             `bson:"day" json:"day"`   // "Monday" ... "Sunday"
	Time      string             `bson:"time" json:"time"` // "8:00 AM - 5:00 PM"
	Room      string             `bson:"room" json:"room"` // "N/A" for checker duties
	Status    string             `bson:"status" json:"status"`
}

// CreateDutyRequest body of POST /duties
type CreateDutyRequest struct {
	ScholarID string `json:"id" validate:"required,max=64"`
	Day       string `json:"day" validate:"required,weekday"`
	Time      string `json:"time" validate:"required,timerange"`
	Room      string `json:"room" validate:"required,max=32"`
}

// UpdateDutyRequest body of PUT /duties/:id, empty fields are left untouched.
type UpdateDutyRequest struct {
	Day  string `json:"day" validate:"omitempty,weekday"`
	Time string `json:"time" validate:"omitempty,timerange"`
	Room string `json:"room" validate:"omitempty,max=32"`
}

// DutyStatusRequest body of PATCH /duties/:id/status
type DutyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Deactivated"`
}

// ToEngine converts the document into an assignment. ok is false when the
// stored day is not a weekday name; such duties cannot fall on any date.
func (d Duty) ToEngine() (reconcile.DutyAssignment, bool) {
	day, ok := reconcile.ParseWeekday(d.Day)
	if !ok {
		return reconcile.DutyAssignment{}, false
	}
	status := reconcile.DutyDeactivated
	if d.Status == string(reconcile.DutyActive) {
		status = reconcile.DutyActive
	}
	return reconcile.DutyAssignment{
		ScholarID: d.ScholarID,
		Weekday:   day,
		TimeRange: d.Time,
		Location:  d.Room,
		Status:    status,
	}, true
}
