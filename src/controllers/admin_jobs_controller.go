package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"scholar-duty-backend/src/jobs"
	"scholar-duty-backend/src/utils"
)

// JobsController lets admins trigger the dashboard refresh by hand.
type JobsController struct {
	client  jobs.Enqueuer // nil without Redis
	handler asynq.Handler
}

func NewJobsController(client jobs.Enqueuer, handler asynq.Handler) *JobsController {
	return &JobsController{client: client, handler: handler}
}

// TriggerRefresh godoc
// @Summary      Enqueue a dashboard refresh
// @Description  Queues a dashboard:refresh task for the background worker. Requires Redis.
// @Tags         admin
// @Produce      json
// @Success      202  {object}  map[string]interface{}
// @Failure      503  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/jobs/refresh [post]
func (jc *JobsController) TriggerRefresh(c *fiber.Ctx) error {
	if jc.client == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "asynq client not initialized")
	}
	if err := jobs.EnqueueRefresh(c.Context(), jc.client, "manual"); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "enqueued", "type": jobs.TypeRefreshDashboard})
}

// RunRefreshNow godoc
// @Summary      Refresh the dashboard now (in-process)
// @Description  Runs the refresh handler synchronously. Does not need Redis for the task itself.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/jobs/refresh-now [post]
func (jc *JobsController) RunRefreshNow(c *fiber.Ctx) error {
	task, err := jobs.NewRefreshDashboardTask("manual")
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := jc.handler.ProcessTask(context.Background(), task); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "executed", "type": jobs.TypeRefreshDashboard})
}
