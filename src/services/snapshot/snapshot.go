// Package snapshot loads the scholars, duties and attendance collections that
// one reconciliation runs against.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
)

// Source fetches a snapshot whose attendance covers at least [from, to].
type Source interface {
	Fetch(ctx context.Context, from, to time.Time) (reconcile.Snapshot, error)
}

// MongoSource reads the three collections concurrently. The reads are not
// transactional; whatever comes back is treated as the snapshot.
type MongoSource struct {
	scholars   *mongo.Collection
	duties     *mongo.Collection
	attendance *mongo.Collection
	logger     *zap.Logger
}

func NewMongoSource(scholars, duties, attendance *mongo.Collection, logger *zap.Logger) *MongoSource {
	return &MongoSource{scholars: scholars, duties: duties, attendance: attendance, logger: logger}
}

func (s *MongoSource) Fetch(ctx context.Context, from, to time.Time) (reconcile.Snapshot, error) {
	var (
		scholars []models.Scholar
		duties   []models.Duty
		events   []models.Attendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return findAll(gctx, s.scholars, bson.M{}, &scholars)
	})
	g.Go(func() error {
		return findAll(gctx, s.duties, bson.M{}, &duties)
	})
	g.Go(func() error {
		// One day of slack on both sides so time-zone shifts cannot drop events
		// that fall on the first or last local date.
		filter := bson.M{"checkInTime": bson.M{
			"$gte": from.Add(-24 * time.Hour),
			"$lt":  to.Add(48 * time.Hour),
		}}
		return findAll(gctx, s.attendance, filter, &events)
	})
	if err := g.Wait(); err != nil {
		return reconcile.Snapshot{}, err
	}

	return Build(scholars, duties, events, s.logger), nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}) error {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return nil
}

// Build converts stored documents into engine input. Duties with an unknown
// day name are logged and dropped.
func Build(scholars []models.Scholar, duties []models.Duty, events []models.Attendance, logger *zap.Logger) reconcile.Snapshot {
	snap := reconcile.Snapshot{
		Scholars: make([]reconcile.Scholar, 0, len(scholars)),
		Duties:   make([]reconcile.DutyAssignment, 0, len(duties)),
		Events:   make([]reconcile.AttendanceEvent, 0, len(events)),
	}
	for _, s := range scholars {
		snap.Scholars = append(snap.Scholars, s.ToEngine())
	}
	for _, d := range duties {
		a, ok := d.ToEngine()
		if !ok {
			logger.Warn("skipping duty with unknown day",
				zap.String("dutyId", d.DocID.Hex()),
				zap.String("scholarId", d.ScholarID),
				zap.String("day", d.Day))
			continue
		}
		snap.Duties = append(snap.Duties, a)
	}
	for _, ev := range events {
		snap.Events = append(snap.Events, ev.ToEngine())
	}
	return snap
}
