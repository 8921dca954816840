package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/services/attendance"
	"scholar-duty-backend/src/utils"
)

// AttendanceService is implemented by attendance.Service.
type AttendanceService interface {
	CheckIn(ctx context.Context, req models.CheckRequest, at time.Time, encodedBy string) (*models.Attendance, error)
	CheckOut(ctx context.Context, req models.CheckRequest, at time.Time) (*models.Attendance, error)
	List(ctx context.Context, q models.AttendanceQuery, p models.PaginationParams) (*models.PaginatedResponse, error)
}

type AttendanceController struct {
	svc AttendanceService
	now func() time.Time
}

func NewAttendanceController(svc AttendanceService) *AttendanceController {
	return &AttendanceController{svc: svc, now: time.Now}
}

func attendanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, attendance.ErrAlreadyCheckedIn), errors.Is(err, attendance.ErrNoOpenCheckIn):
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, attendance.ErrCheckoutBeforeCheckin), errors.Is(err, attendance.ErrInvalidDate):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// checkRequest parses and validates the body, returning the event time.
func (ac *AttendanceController) checkRequest(c *fiber.Ctx) (models.CheckRequest, time.Time, error) {
	var req models.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return req, time.Time{}, errors.New("Invalid input: " + err.Error())
	}
	if err := utils.Validate.Struct(req); err != nil {
		return req, time.Time{}, errors.New(utils.ValidationMessage(err))
	}
	at := ac.now()
	if req.Time != nil {
		at = *req.Time
	}
	return req, at, nil
}

// CheckIn godoc
// @Summary      Record a check-in
// @Description  Opens an attendance event. Time defaults to now.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  models.CheckRequest  true  "Scholar and location"
// @Success      201  {object}  models.Attendance
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/checkin [post]
func (ac *AttendanceController) CheckIn(c *fiber.Ctx) error {
	req, at, err := ac.checkRequest(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	rec, err := ac.svc.CheckIn(c.Context(), req, at, userID(c))
	if err != nil {
		return attendanceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// CheckOut godoc
// @Summary      Record a check-out
// @Description  Closes the latest open check-in of the day at the location. Time defaults to now.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  models.CheckRequest  true  "Scholar and location"
// @Success      200  {object}  models.Attendance
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/checkout [post]
func (ac *AttendanceController) CheckOut(c *fiber.Ctx) error {
	req, at, err := ac.checkRequest(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	rec, err := ac.svc.CheckOut(c.Context(), req, at)
	if err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(rec)
}

// GetAttendance godoc
// @Summary      List attendance events
// @Tags         attendance
// @Produce      json
// @Param        studentId  query  string  false  "Scholar ID"
// @Param        start      query  string  false  "First check-in date (YYYY-MM-DD)"
// @Param        end        query  string  false  "Last check-in date (YYYY-MM-DD)"
// @Param        page       query  int     false  "Page"
// @Param        limit      query  int     false  "Page size"
// @Param        sortBy     query  string  false  "Sort field"
// @Param        order      query  string  false  "asc or desc"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /attendance [get]
func (ac *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	var q models.AttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	p := models.DefaultPagination("checkInTime")
	if err := c.QueryParser(&p); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	res, err := ac.svc.List(c.Context(), q, p)
	if err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(res)
}
