package controllers

import (
	"bytes"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/services/scholars"
)

func scholarApp(svc ScholarService) *fiber.App {
	sc := NewScholarController(svc)
	app := fiber.New()
	app.Get("/scholars", sc.GetScholars)
	app.Get("/scholars/:id", sc.GetScholarByID)
	app.Post("/scholars", sc.CreateScholar)
	app.Get("/scholars/:id/qrcode", sc.GetScholarQRCode)
	return app
}

func TestScholarEndpoints(t *testing.T) {
	app := scholarApp(&fakeScholars{get: &models.Scholar{ScholarID: "S-1", Name: "Ana"}})

	status, body := do(t, app, "GET", "/scholars/S-1", "")
	assert.Equal(t, fiber.StatusOK, status)
	var s models.Scholar
	decode(t, body, &s)
	assert.Equal(t, "Ana", s.Name)

	status, _ = do(t, app, "GET", "/scholars", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body = do(t, app, "POST", "/scholars", `{"id":"S-2","name":"Ben"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	decode(t, body, &s)
	assert.Equal(t, "S-2", s.ScholarID)
	assert.False(t, s.CreatedAt.IsZero())

	status, _ = do(t, app, "POST", "/scholars", `{"id":"S-2"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestScholarErrors(t *testing.T) {
	status, _ := do(t, scholarApp(&fakeScholars{getErr: scholars.ErrScholarNotFound}), "GET", "/scholars/S-404", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, scholarApp(&fakeScholars{getErr: scholars.ErrScholarNotFound}), "GET", "/scholars/S-404/qrcode", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, scholarApp(&fakeScholars{err: scholars.ErrScholarExists}), "POST", "/scholars", `{"id":"S-1","name":"Ana"}`)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestGetScholarQRCode(t *testing.T) {
	app := scholarApp(&fakeScholars{get: &models.Scholar{ScholarID: "S-1"}})

	status, body := do(t, app, "GET", "/scholars/S-1/qrcode?size=128", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))
}
