package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRefreshDashboard = "dashboard:refresh"

// RefreshPayload only carries the trigger; the refresh always reads a fresh snapshot.
type RefreshPayload struct {
	Reason string `json:"reason"`
}

func NewRefreshDashboardTask(reason string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshPayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshDashboard, payload), nil
}
