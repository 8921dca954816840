package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"scholar-duty-backend/src/models"
	"scholar-duty-backend/src/reconcile"
)

var pht = time.FixedZone("PHT", 8*60*60)

type fakeDashboard struct {
	gotStart, gotEnd time.Time
	rate             reconcile.RateResult
	err              error
}

func (f *fakeDashboard) Location() *time.Location { return pht }

func (f *fakeDashboard) Rate(_ context.Context, start, end time.Time) (reconcile.RateResult, error) {
	f.gotStart, f.gotEnd = start, end
	if start.After(end) {
		return reconcile.RateResult{}, &reconcile.EmptyRangeError{Start: start, End: end}
	}
	return f.rate, f.err
}

func (f *fakeDashboard) Daily(_ context.Context, start, end time.Time) ([]reconcile.RateResult, error) {
	return []reconcile.RateResult{f.rate}, f.err
}

func (f *fakeDashboard) Scholars(_ context.Context, start, end time.Time) ([]reconcile.ScholarRate, error) {
	return []reconcile.ScholarRate{{ScholarID: "S-1", Result: f.rate}}, f.err
}

func (f *fakeDashboard) TodayStatus(_ context.Context, scholarID string) (models.TodayStatus, error) {
	return models.TodayStatus{ScholarID: scholarID, Date: "2026-10-12"}, f.err
}

func (f *fakeDashboard) Trends(context.Context) (models.Trends, error) {
	return models.Trends{}, f.err
}

func (f *fakeDashboard) CachedSummary(context.Context) (models.Summary, error) {
	return models.Summary{Today: f.rate}, f.err
}

type fakeDuties struct {
	created *models.CreateDutyRequest
	err     error
}

func (f *fakeDuties) List(_ context.Context, scholarID string) ([]models.Duty, error) {
	return []models.Duty{{ScholarID: scholarID}}, f.err
}

func (f *fakeDuties) Create(_ context.Context, req models.CreateDutyRequest) (*models.Duty, error) {
	f.created = &req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Duty{ScholarID: req.ScholarID, Day: req.Day, Time: req.Time, Room: req.Room, Status: "Active"}, nil
}

func (f *fakeDuties) Update(_ context.Context, id string, req models.UpdateDutyRequest) (*models.Duty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Duty{Day: req.Day, Time: req.Time, Room: req.Room}, nil
}

func (f *fakeDuties) SetStatus(_ context.Context, id string, status string) (*models.Duty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Duty{Status: status}, nil
}

type fakeAttendance struct {
	at        time.Time
	encodedBy string
	query     models.AttendanceQuery
	page      models.PaginationParams
	err       error
}

func (f *fakeAttendance) CheckIn(_ context.Context, req models.CheckRequest, at time.Time, encodedBy string) (*models.Attendance, error) {
	f.at, f.encodedBy = at, encodedBy
	if f.err != nil {
		return nil, f.err
	}
	return &models.Attendance{StudentID: req.StudentID, Location: req.Location, CheckInTime: at, EncodedBy: encodedBy}, nil
}

func (f *fakeAttendance) CheckOut(_ context.Context, req models.CheckRequest, at time.Time) (*models.Attendance, error) {
	f.at = at
	if f.err != nil {
		return nil, f.err
	}
	return &models.Attendance{StudentID: req.StudentID, Location: req.Location, CheckOutTime: &at}, nil
}

func (f *fakeAttendance) List(_ context.Context, q models.AttendanceQuery, p models.PaginationParams) (*models.PaginatedResponse, error) {
	f.query, f.page = q, p
	if f.err != nil {
		return nil, f.err
	}
	return models.NewPaginatedResponse([]models.Attendance{}, 0, models.DefaultPagination("checkInTime")), nil
}

type fakeScholars struct {
	get    *models.Scholar
	getErr error
	err    error
}

func (f *fakeScholars) List(context.Context) ([]models.Scholar, error) {
	return []models.Scholar{{ScholarID: "S-1"}}, f.err
}

func (f *fakeScholars) Get(_ context.Context, scholarID string) (*models.Scholar, error) {
	return f.get, f.getErr
}

func (f *fakeScholars) Create(_ context.Context, req models.CreateScholarRequest, now time.Time) (*models.Scholar, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Scholar{ScholarID: req.ScholarID, Name: req.Name, CreatedAt: now}, nil
}

// withUser mimics AuthJWT for handlers under test.
func withUser(id string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", id)
		return c.Next()
	}
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v))
}
