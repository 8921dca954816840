package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/qrcode"
	"scholar-duty-backend/src/services/scholars"
	"scholar-duty-backend/src/utils"
)

// ScholarService is implemented by scholars.Service.
type ScholarService interface {
	List(ctx context.Context) ([]models.Scholar, error)
	Get(ctx context.Context, scholarID string) (*models.Scholar, error)
	Create(ctx context.Context, req models.CreateScholarRequest, now time.Time) (*models.Scholar, error)
}

type ScholarController struct {
	svc ScholarService
}

func NewScholarController(svc ScholarService) *ScholarController {
	return &ScholarController{svc: svc}
}

// GetScholars godoc
// @Summary      List scholars
// @Tags         scholars
// @Produce      json
// @Success      200  {array}   models.Scholar
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /scholars [get]
func (sc *ScholarController) GetScholars(c *fiber.Ctx) error {
	list, err := sc.svc.List(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

// GetScholarByID godoc
// @Summary      Get a scholar
// @Tags         scholars
// @Produce      json
// @Param        id  path  string  true  "Scholar ID"
// @Success      200  {object}  models.Scholar
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /scholars/{id} [get]
func (sc *ScholarController) GetScholarByID(c *fiber.Ctx) error {
	scholar, err := sc.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, scholars.ErrScholarNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(scholar)
}

// CreateScholar godoc
// @Summary      Register a scholar
// @Tags         scholars
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateScholarRequest  true  "Scholar"
// @Success      201  {object}  models.Scholar
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /scholars [post]
func (sc *ScholarController) CreateScholar(c *fiber.Ctx) error {
	var req models.CreateScholarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}
	scholar, err := sc.svc.Create(c.Context(), req, time.Now())
	if err != nil {
		if errors.Is(err, scholars.ErrScholarExists) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(scholar)
}

// GetScholarQRCode godoc
// @Summary      Check-in badge of a scholar
// @Description  PNG QR code holding the scholar ID, scanned at the check-in desk
// @Tags         scholars
// @Produce      png
// @Param        id    path   string  true   "Scholar ID"
// @Param        size  query  int     false  "Edge length in pixels"  default(256)
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /scholars/{id}/qrcode [get]
func (sc *ScholarController) GetScholarQRCode(c *fiber.Ctx) error {
	scholar, err := sc.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, scholars.ErrScholarNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	size := c.QueryInt("size", qrcode.DefaultSize)
	if size < 64 || size > 1024 {
		size = qrcode.DefaultSize
	}
	png, err := qrcode.BadgePNG(scholar.ScholarID, size)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Type("png")
	return c.Send(png)
}
