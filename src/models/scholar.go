package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholar-duty-backend/src/reconcile"
)

// Scholar work-study scholar. ScholarID is the school-issued id that duties and
// attendance refer to, not the Mongo _id.
type Scholar struct {
	DocID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ScholarID string             `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateScholarRequest body of POST /scholars
type CreateScholarRequest struct {
	ScholarID string `json:"id" validate:"required,max=64"`
	Name      string `json:"name" validate:"required,max=200"`
}

func (s Scholar) ToEngine() reconcile.Scholar {
	return reconcile.Scholar{ID: s.ScholarID, Name: s.Name, CreatedAt: s.CreatedAt}
}
