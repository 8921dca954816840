// Package scholars stores the scholar roster.
package scholars

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
)

var (
	ErrScholarNotFound = errors.New("scholar not found")
	ErrScholarExists   = errors.New("scholar id already registered")
)

type Service struct {
	coll    *mongo.Collection
	logger  *zap.Logger
	onWrite func(ctx context.Context)
}

// NewService builds the roster service. onWrite runs after every successful insert.
func NewService(coll *mongo.Collection, logger *zap.Logger, onWrite func(ctx context.Context)) *Service {
	if onWrite == nil {
		onWrite = func(context.Context) {}
	}
	return &Service{coll: coll, logger: logger, onWrite: onWrite}
}

func (s *Service) List(ctx context.Context) ([]models.Scholar, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find scholars: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Scholar{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode scholars: %w", err)
	}
	return out, nil
}

// Get looks a scholar up by school id.
func (s *Service) Get(ctx context.Context, scholarID string) (*models.Scholar, error) {
	var sc models.Scholar
	if err := s.coll.FindOne(ctx, bson.M{"id": scholarID}).Decode(&sc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrScholarNotFound
		}
		return nil, fmt.Errorf("find scholar: %w", err)
	}
	return &sc, nil
}

func (s *Service) Create(ctx context.Context, req models.CreateScholarRequest, now time.Time) (*models.Scholar, error) {
	sc := models.Scholar{
		ScholarID: strings.TrimSpace(req.ScholarID),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: now,
	}
	res, err := s.coll.InsertOne(ctx, sc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrScholarExists
		}
		return nil, fmt.Errorf("insert scholar: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sc.DocID = oid
	}
	s.logger.Info("scholar created", zap.String("scholarId", sc.ScholarID))
	s.onWrite(ctx)
	return &sc, nil
}
