package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholar-duty-backend/src/reconcile"
	"scholar-duty-backend/src/utils"
)

var errMissingRange = errors.New("start and end are required (YYYY-MM-DD)")

// parseRange reads the inclusive ?start=&end= local dates.
func parseRange(c *fiber.Ctx, loc *time.Location) (time.Time, time.Time, error) {
	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errMissingRange
	}
	start, err := reconcile.ParseDate(startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := reconcile.ParseDate(endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// rangeError answers an engine error: an inverted range is the caller's
// fault, anything else is ours.
func rangeError(c *fiber.Ctx, err error) error {
	var empty *reconcile.EmptyRangeError
	if errors.As(err, &empty) {
		return utils.HandleError(c, fiber.StatusBadRequest, empty.Error())
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
}

// userID is the caller's id from the JWT claims.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("userId").(string)
	return id
}
