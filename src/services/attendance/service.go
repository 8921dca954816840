// Package attendance records manual check-ins and check-outs.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
)

var (
	ErrAlreadyCheckedIn      = errors.New("scholar already has an open check-in at this location today")
	ErrNoOpenCheckIn         = errors.New("no open check-in at this location today")
	ErrCheckoutBeforeCheckin = errors.New("check-out must be after check-in")
	ErrInvalidDate           = errors.New("invalid date")
)

// WriteHook runs after every successful write, e.g. to drop cached dashboards.
type WriteHook func(ctx context.Context)

type Service struct {
	coll    *mongo.Collection
	loc     *time.Location
	logger  *zap.Logger
	onWrite WriteHook
}

func NewService(coll *mongo.Collection, loc *time.Location, logger *zap.Logger, onWrite WriteHook) *Service {
	if onWrite == nil {
		onWrite = func(context.Context) {}
	}
	return &Service{coll: coll, loc: loc, logger: logger, onWrite: onWrite}
}

// dayFilter matches events of scholar at location checked in on the local day of t.
func dayFilter(studentID, location string, t time.Time, loc *time.Location) bson.M {
	start := reconcile.DayOf(t, loc)
	return bson.M{
		"studentId": studentID,
		"location":  location,
		"checkInTime": bson.M{
			"$gte": start,
			"$lt":  start.AddDate(0, 0, 1),
		},
	}
}

// CheckIn opens an attendance event. A second open check-in for the same
// scholar, location and day is rejected.
func (s *Service) CheckIn(ctx context.Context, req models.CheckRequest, at time.Time, encodedBy string) (*models.Attendance, error) {
	filter := dayFilter(req.StudentID, req.Location, at, s.loc)
	filter["checkOutTime"] = nil
	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count open check-ins: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	rec := models.Attendance{
		EventID:     uuid.NewString(),
		StudentID:   req.StudentID,
		CheckInTime: at,
		Location:    req.Location,
		EncodedBy:   encodedBy,
	}
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("insert check-in: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.DocID = oid
	}
	s.logger.Info("check-in recorded", zap.String("studentId", req.StudentID), zap.String("location", req.Location), zap.String("eventId", rec.EventID))
	s.onWrite(ctx)
	return &rec, nil
}

// CheckOut closes the latest open check-in of the day at the location.
func (s *Service) CheckOut(ctx context.Context, req models.CheckRequest, at time.Time) (*models.Attendance, error) {
	filter := dayFilter(req.StudentID, req.Location, at, s.loc)
	filter["checkOutTime"] = nil

	var open models.Attendance
	err := s.coll.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "checkInTime", Value: -1}})).Decode(&open)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoOpenCheckIn
		}
		return nil, fmt.Errorf("find open check-in: %w", err)
	}
	if err := validateCheckout(open, at); err != nil {
		return nil, err
	}

	// checkOutTime: nil in the filter keeps a concurrent check-out from being overwritten
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": open.DocID, "checkOutTime": nil},
		bson.M{"$set": bson.M{"checkOutTime": at}},
	)
	if err != nil {
		return nil, fmt.Errorf("update check-out: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNoOpenCheckIn
	}

	open.CheckOutTime = &at
	s.logger.Info("check-out recorded", zap.String("studentId", req.StudentID), zap.String("location", req.Location))
	s.onWrite(ctx)
	return &open, nil
}

func validateCheckout(open models.Attendance, at time.Time) error {
	if open.CheckOutTime != nil {
		return ErrNoOpenCheckIn
	}
	if !at.After(open.CheckInTime) {
		return ErrCheckoutBeforeCheckin
	}
	return nil
}

// List pages attendance events, optionally for one scholar and a date range.
func (s *Service) List(ctx context.Context, q models.AttendanceQuery, p models.PaginationParams) (*models.PaginatedResponse, error) {
	filter, err := listFilter(q, s.loc)
	if err != nil {
		return nil, err
	}
	p.Normalize("checkInTime", "checkOutTime", "studentId", "location")

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	sort := bson.D{}
	for k, v := range p.GetSortOrder() {
		sort = append(sort, bson.E{Key: k, Value: v})
	}
	opts := options.Find().SetSort(sort).SetSkip(p.GetSkip()).SetLimit(int64(p.Limit))
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Attendance{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	return models.NewPaginatedResponse(items, total, p), nil
}

// listFilter builds the Mongo filter for q. Dates are inclusive local days.
func listFilter(q models.AttendanceQuery, loc *time.Location) (bson.M, error) {
	filter := bson.M{}
	if q.StudentID != "" {
		filter["studentId"] = q.StudentID
	}
	rng := bson.M{}
	if q.Start != "" {
		start, err := reconcile.ParseDate(q.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: start %q", ErrInvalidDate, q.Start)
		}
		rng["$gte"] = start
	}
	if q.End != "" {
		end, err := reconcile.ParseDate(q.End, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: end %q", ErrInvalidDate, q.End)
		}
		rng["$lt"] = end.AddDate(0, 0, 1)
	}
	if len(rng) > 0 {
		filter["checkInTime"] = rng
	}
	return filter, nil
}
