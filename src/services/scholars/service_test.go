package scholars

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
)

func TestService(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get found", func(mt *mtest.T) {
		svc := NewService(mt.Coll, zap.NewNop(), nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "db.scholars", mtest.FirstBatch, bson.D{
			{Key: "id", Value: "S-1"},
			{Key: "name", Value: "Ana Reyes"},
		}))

		sc, err := svc.Get(context.Background(), "S-1")
		require.NoError(mt, err)
		assert.Equal(mt, "Ana Reyes", sc.Name)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		svc := NewService(mt.Coll, zap.NewNop(), nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.scholars", mtest.FirstBatch))

		_, err := svc.Get(context.Background(), "S-404")
		assert.ErrorIs(mt, err, ErrScholarNotFound)
	})

	mt.Run("create trims input", func(mt *mtest.T) {
		svc := NewService(mt.Coll, zap.NewNop(), nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		now := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
		sc, err := svc.Create(context.Background(), models.CreateScholarRequest{ScholarID: " S-2 ", Name: "Ben Cruz "}, now)
		require.NoError(mt, err)
		assert.Equal(mt, "S-2", sc.ScholarID)
		assert.Equal(mt, "Ben Cruz", sc.Name)
		assert.Equal(mt, now, sc.CreatedAt)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		svc := NewService(mt.Coll, zap.NewNop(), nil)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := svc.Create(context.Background(), models.CreateScholarRequest{ScholarID: "S-1", Name: "Ana"}, time.Now())
		assert.ErrorIs(mt, err, ErrScholarExists)
	})

	mt.Run("create notifies writer", func(mt *mtest.T) {
		writes := 0
		svc := NewService(mt.Coll, zap.NewNop(), func(context.Context) { writes++ })
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		_, err := svc.Create(context.Background(), models.CreateScholarRequest{ScholarID: "S-3", Name: "Cara"}, time.Now())
		require.NoError(mt, err)
		assert.Equal(mt, 1, writes)
	})

	mt.Run("duplicate does not notify writer", func(mt *mtest.T) {
		writes := 0
		svc := NewService(mt.Coll, zap.NewNop(), func(context.Context) { writes++ })
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := svc.Create(context.Background(), models.CreateScholarRequest{ScholarID: "S-1", Name: "Ana"}, time.Now())
		require.ErrorIs(mt, err, ErrScholarExists)
		assert.Zero(mt, writes)
	})
}
