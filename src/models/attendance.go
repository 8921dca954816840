package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholar-duty-backend/src/reconcile"
)

// Attendance one check-in, closed later by a check-out.
type Attendance struct {
	DocID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	EventID      string             `bson:"eventId" json:"eventId"`
	StudentID    string             `bson:"studentId" json:"studentId"`
	CheckInTime  time.Time          `bson:"checkInTime" json:"checkInTime"`
	CheckOutTime *time.Time         `bson:"checkOutTime" json:"checkOutTime"`
	Location     string             `bson:"location" json:"location"`
	EncodedBy    string             `bson:"encodedBy,omitempty" json:"encodedBy,omitempty"`
}

// CheckRequest body of POST /attendance/checkin and /attendance/checkout.
// Time defaults to the server clock.
type CheckRequest struct {
	StudentID string     `json:"studentId" validate:"required,max=64"`
	Location  string     `json:"location" validate:"required,max=32"`
	Time      *time.Time `json:"time"`
}

// AttendanceQuery query of GET /attendance
type AttendanceQuery struct {
	StudentID string `query:"studentId"`
	Start     string `query:"start"`
	End       string `query:"end"`
}

func (a Attendance) ToEngine() reconcile.AttendanceEvent {
	return reconcile.AttendanceEvent{
		ScholarID: a.StudentID,
		CheckIn:   a.CheckInTime,
		CheckOut:  a.CheckOutTime,
		Location:  a.Location,
	}
}
