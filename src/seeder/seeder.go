package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/services/scholars"
)

// ScholarCreator is implemented by scholars.Service.
type ScholarCreator interface {
	Create(ctx context.Context, req models.CreateScholarRequest, now time.Time) (*models.Scholar, error)
}

// DutyCreator is implemented by duties.Service.
type DutyCreator interface {
	List(ctx context.Context, scholarID string) ([]models.Duty, error)
	Create(ctx context.Context, req models.CreateDutyRequest) (*models.Duty, error)
}

// SampleScholars is a small roster for local development: two facilitators
// and one desk checker.
var SampleScholars = []models.CreateScholarRequest{
	{ScholarID: "2023-0001", Name: "Ana Reyes"},
	{ScholarID: "2023-0002", Name: "Ben Cruz"},
	{ScholarID: "2023-0003", Name: "Carla Santos"},
}

var SampleDuties = []models.CreateDutyRequest{
	{ScholarID: "2023-0001", Day: "Monday", Time: "8:00 AM - 10:00 AM", Room: "201"},
	{ScholarID: "2023-0001", Day: "Wednesday", Time: "1:00 PM - 3:00 PM", Room: "201"},
	{ScholarID: "2023-0002", Day: "Tuesday", Time: "9:00 AM - 11:00 AM", Room: "305"},
	{ScholarID: "2023-0002", Day: "Thursday", Time: "9:00 AM - 11:00 AM", Room: "305"},
	{ScholarID: "2023-0003", Day: "Monday", Time: "7:00 AM - 12:00 PM", Room: "N/A"},
	{ScholarID: "2023-0003", Day: "Friday", Time: "1:00 PM - 5:00 PM", Room: "N/A"},
}

// SeedSampleData inserts the sample roster and duties. Scholars that already
// exist are kept, and duties are only added for scholars that have none.
func SeedSampleData(ctx context.Context, sc ScholarCreator, dc DutyCreator, logger *zap.Logger) error {
	now := time.Now()
	for _, req := range SampleScholars {
		if _, err := sc.Create(ctx, req, now); err != nil {
			if errors.Is(err, scholars.ErrScholarExists) {
				continue
			}
			return fmt.Errorf("seed scholar %s: %w", req.ScholarID, err)
		}
		logger.Info("🌱 seeded scholar", zap.String("scholarId", req.ScholarID))
	}

	seeded := map[string]bool{}
	for _, req := range SampleDuties {
		if _, checked := seeded[req.ScholarID]; !checked {
			existing, err := dc.List(ctx, req.ScholarID)
			if err != nil {
				return fmt.Errorf("list duties of %s: %w", req.ScholarID, err)
			}
			seeded[req.ScholarID] = len(existing) == 0
		}
		if !seeded[req.ScholarID] {
			continue
		}
		if _, err := dc.Create(ctx, req); err != nil {
			return fmt.Errorf("seed duty %s %s: %w", req.ScholarID, req.Day, err)
		}
	}
	logger.Info("✅ sample data ready")
	return nil
}
