package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
	"scholar-duty-backend/src/utils"
)

// DashboardService is implemented by dashboard.Service.
type DashboardService interface {
	Location() *time.Location
	Rate(ctx context.Context, start, end time.Time) (reconcile.RateResult, error)
	Daily(ctx context.Context, start, end time.Time) ([]reconcile.RateResult, error)
	Scholars(ctx context.Context, start, end time.Time) ([]reconcile.ScholarRate, error)
	TodayStatus(ctx context.Context, scholarID string) (models.TodayStatus, error)
	Trends(ctx context.Context) (models.Trends, error)
	CachedSummary(ctx context.Context) (models.Summary, error)
}

type DashboardController struct {
	svc DashboardService
}

func NewDashboardController(svc DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

// GetRate godoc
// @Summary      Attendance rate over a date range
// @Description  Present duty instances divided by expected duty instances, both dates inclusive
// @Tags         dashboard
// @Produce      json
// @Param        start  query  string  true  "First date (YYYY-MM-DD)"
// @Param        end    query  string  true  "Last date (YYYY-MM-DD)"
// @Success      200  {object}  reconcile.RateResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/rate [get]
func (dc *DashboardController) GetRate(c *fiber.Ctx) error {
	start, end, err := parseRange(c, dc.svc.Location())
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	res, err := dc.svc.Rate(c.Context(), start, end)
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(res)
}

// GetDailyRates godoc
// @Summary      Attendance rate per day
// @Tags         dashboard
// @Produce      json
// @Param        start  query  string  true  "First date (YYYY-MM-DD)"
// @Param        end    query  string  true  "Last date (YYYY-MM-DD)"
// @Success      200  {array}   reconcile.RateResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/daily [get]
func (dc *DashboardController) GetDailyRates(c *fiber.Ctx) error {
	start, end, err := parseRange(c, dc.svc.Location())
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	res, err := dc.svc.Daily(c.Context(), start, end)
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(res)
}

// GetScholarRates godoc
// @Summary      Attendance rate per scholar
// @Tags         dashboard
// @Produce      json
// @Param        start  query  string  true  "First date (YYYY-MM-DD)"
// @Param        end    query  string  true  "Last date (YYYY-MM-DD)"
// @Success      200  {array}   reconcile.ScholarRate
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/scholars [get]
func (dc *DashboardController) GetScholarRates(c *fiber.Ctx) error {
	start, end, err := parseRange(c, dc.svc.Location())
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	res, err := dc.svc.Scholars(c.Context(), start, end)
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(res)
}

// GetTodayStatus godoc
// @Summary      Today's duties of a scholar
// @Description  Pending, Present or Absent for each of the scholar's duties today
// @Tags         dashboard
// @Produce      json
// @Param        scholarId  path  string  true  "Scholar ID"
// @Success      200  {object}  models.TodayStatus
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/today/{scholarId} [get]
func (dc *DashboardController) GetTodayStatus(c *fiber.Ctx) error {
	status, err := dc.svc.TodayStatus(c.Context(), c.Params("scholarId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(status)
}

// GetTrends godoc
// @Summary      Week-over-week and month-over-month trends
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.Trends
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/trends [get]
func (dc *DashboardController) GetTrends(c *fiber.Ctx) error {
	trends, err := dc.svc.Trends(c.Context())
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(trends)
}

// GetSummary godoc
// @Summary      Dashboard summary
// @Description  Today, this week, this month, trends and today's duty tables. Served from the hourly refresh when available.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.Summary
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /dashboard/summary [get]
func (dc *DashboardController) GetSummary(c *fiber.Ctx) error {
	sum, err := dc.svc.CachedSummary(c.Context())
	if err != nil {
		return rangeError(c, err)
	}
	return c.JSON(sum)
}
