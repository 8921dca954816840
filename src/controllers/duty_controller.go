package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/services/duties"
	"scholar-duty-backend/src/utils"
)

// DutyService is implemented by duties.Service.
type DutyService interface {
	List(ctx context.Context, scholarID string) ([]models.Duty, error)
	Create(ctx context.Context, req models.CreateDutyRequest) (*models.Duty, error)
	Update(ctx context.Context, id string, req models.UpdateDutyRequest) (*models.Duty, error)
	SetStatus(ctx context.Context, id string, status string) (*models.Duty, error)
}

type DutyController struct {
	svc DutyService
}

func NewDutyController(svc DutyService) *DutyController {
	return &DutyController{svc: svc}
}

func dutyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, duties.ErrInvalidID):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, duties.ErrDutyNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// GetDuties godoc
// @Summary      List duties
// @Tags         duties
// @Produce      json
// @Param        scholarId  query  string  false  "Only duties of this scholar"
// @Success      200  {array}   models.Duty
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /duties [get]
func (dc *DutyController) GetDuties(c *fiber.Ctx) error {
	list, err := dc.svc.List(c.Context(), c.Query("scholarId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

// CreateDuty godoc
// @Summary      Assign a weekly duty
// @Tags         duties
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateDutyRequest  true  "Duty"
// @Success      201  {object}  models.Duty
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /duties [post]
func (dc *DutyController) CreateDuty(c *fiber.Ctx) error {
	var req models.CreateDutyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	duty, err := dc.svc.Create(c.Context(), req)
	if err != nil {
		return dutyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(duty)
}

// UpdateDuty godoc
// @Summary      Change a duty's day, time or room
// @Tags         duties
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Duty ID"
// @Param        body  body  models.UpdateDutyRequest  true  "Fields to change"
// @Success      200  {object}  models.Duty
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /duties/{id} [put]
func (dc *DutyController) UpdateDuty(c *fiber.Ctx) error {
	var req models.UpdateDutyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	duty, err := dc.svc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return dutyError(c, err)
	}
	return c.JSON(duty)
}

// SetDutyStatus godoc
// @Summary      Activate or deactivate a duty
// @Tags         duties
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Duty ID"
// @Param        body  body  models.DutyStatusRequest  true  "Active or Deactivated"
// @Success      200  {object}  models.Duty
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /duties/{id}/status [patch]
func (dc *DutyController) SetDutyStatus(c *fiber.Ctx) error {
	var req models.DutyStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	duty, err := dc.svc.SetStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return dutyError(c, err)
	}
	return c.JSON(duty)
}
