package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"scholar-duty-backend/src/models"
)

// Refresher recomputes and stores the dashboard summary.
type Refresher interface {
	RefreshSummary(ctx context.Context) (models.Summary, error)
}

// RefreshHandler handles dashboard:refresh tasks.
type RefreshHandler struct {
	refresher Refresher
	logger    *zap.Logger
}

func NewRefreshHandler(r Refresher, logger *zap.Logger) *RefreshHandler {
	return &RefreshHandler{refresher: r, logger: logger}
}

func (h *RefreshHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload RefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("❌ refresh payload decode error", zap.Error(err))
		// malformed payloads will never succeed
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	sum, err := h.refresher.RefreshSummary(ctx)
	if err != nil {
		h.logger.Error("❌ dashboard refresh failed", zap.String("reason", payload.Reason), zap.Error(err))
		return err
	}
	h.logger.Info("✅ dashboard refreshed",
		zap.String("reason", payload.Reason),
		zap.Int("todayExpected", sum.Today.TotalExpected),
		zap.Float64("weekRate", sum.Week.Rate))
	return nil
}

// NewServeMux routes every task type of this package.
func NewServeMux(h *RefreshHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypeRefreshDashboard, h)
	return mux
}

// Enqueuer is the subset of *asynq.Client used to queue work.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const (
	refreshBucket = time.Second
	refreshDelay  = 2 * time.Second
)

var now = time.Now

// RefreshTaskID names the refresh task for writes landing in the same second.
func RefreshTaskID(t time.Time) string {
	return fmt.Sprintf("%s-%d", TypeRefreshDashboard, t.Truncate(refreshBucket).Unix())
}

// EnqueueRefresh queues a refresh after a write. Writes within the same second
// share one task, and that task starts only after the second has passed, so a
// write never lands behind a refresh that is already running.
func EnqueueRefresh(ctx context.Context, client Enqueuer, reason string) error {
	if client == nil {
		return nil
	}
	task, err := NewRefreshDashboardTask(reason)
	if err != nil {
		return err
	}
	_, err = client.EnqueueContext(ctx, task,
		asynq.TaskID(RefreshTaskID(now())),
		asynq.ProcessIn(refreshDelay),
		asynq.MaxRetry(3),
	)
	if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		return fmt.Errorf("enqueue %s: %w", TypeRefreshDashboard, err)
	}
	return nil
}

// RegisterSchedule adds the periodic refresh to scheduler.
func RegisterSchedule(scheduler *asynq.Scheduler, cronspec string) (string, error) {
	task, err := NewRefreshDashboardTask("scheduled")
	if err != nil {
		return "", err
	}
	return scheduler.Register(cronspec, task)
}
