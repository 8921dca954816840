// Package duties manages weekly duty assignments. Duties are deactivated,
// never deleted, so past attendance stays attributable.
package duties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
)

var (
	ErrDutyNotFound = errors.New("duty not found")
	ErrInvalidID    = errors.New("invalid duty id")
)

type Service struct {
	coll    *mongo.Collection
	logger  *zap.Logger
	onWrite func(ctx context.Context)
}

func NewService(coll *mongo.Collection, logger *zap.Logger, onWrite func(ctx context.Context)) *Service {
	if onWrite == nil {
		onWrite = func(context.Context) {}
	}
	return &Service{coll: coll, logger: logger, onWrite: onWrite}
}

// List returns duties, all of them or only those of scholarID.
func (s *Service) List(ctx context.Context, scholarID string) ([]models.Duty, error) {
	filter := bson.M{}
	if scholarID != "" {
		filter["id"] = scholarID
	}
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: 1}, {Key: "day", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find duties: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Duty{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode duties: %w", err)
	}
	return out, nil
}

// Create stores a new Active duty.
func (s *Service) Create(ctx context.Context, req models.CreateDutyRequest) (*models.Duty, error) {
	duty := NewDuty(req)
	res, err := s.coll.InsertOne(ctx, duty)
	if err != nil {
		return nil, fmt.Errorf("insert duty: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		duty.DocID = oid
	}
	s.logger.Info("duty created", zap.String("scholarId", duty.ScholarID), zap.String("day", duty.Day), zap.String("time", duty.Time))
	s.onWrite(ctx)
	return &duty, nil
}

// Update changes the day, time or room of a duty.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateDutyRequest) (*models.Duty, error) {
	set := updateFields(req)
	if len(set) == 0 {
		return s.get(ctx, id)
	}
	return s.apply(ctx, id, set)
}

// SetStatus activates or deactivates a duty.
func (s *Service) SetStatus(ctx context.Context, id string, status string) (*models.Duty, error) {
	return s.apply(ctx, id, bson.M{"status": status})
}

func (s *Service) get(ctx context.Context, id string) (*models.Duty, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var duty models.Duty
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&duty); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDutyNotFound
		}
		return nil, fmt.Errorf("find duty: %w", err)
	}
	return &duty, nil
}

func (s *Service) apply(ctx context.Context, id string, set bson.M) (*models.Duty, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var duty models.Duty
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&duty)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDutyNotFound
		}
		return nil, fmt.Errorf("update duty: %w", err)
	}
	s.logger.Info("duty updated", zap.String("dutyId", id), zap.Any("fields", set))
	s.onWrite(ctx)
	return &duty, nil
}

// NewDuty normalizes a create request into a stored duty.
func NewDuty(req models.CreateDutyRequest) models.Duty {
	day, _ := reconcile.ParseWeekday(req.Day)
	return models.Duty{
		ScholarID: strings.TrimSpace(req.ScholarID),
		Day:       day.String(),
		Time:      strings.TrimSpace(req.Time),
		Room:      normalizeRoom(req.Room),
		Status:    string(reconcile.DutyActive),
	}
}

func updateFields(req models.UpdateDutyRequest) bson.M {
	set := bson.M{}
	if req.Day != "" {
		day, _ := reconcile.ParseWeekday(req.Day)
		set["day"] = day.String()
	}
	if req.Time != "" {
		set["time"] = strings.TrimSpace(req.Time)
	}
	if req.Room != "" {
		set["room"] = normalizeRoom(req.Room)
	}
	return set
}

// normalizeRoom trims the room code and spells the no-room sentinel one way.
func normalizeRoom(room string) string {
	room = strings.TrimSpace(room)
	if strings.EqualFold(room, reconcile.NoRoom) {
		return reconcile.NoRoom
	}
	return room
}
