package routes

import (
	"github.com/gofiber/fiber/v2"

	"scholar-duty-backend/src/controllers"
	"scholar-duty-backend/src/middleware"
	"scholar-duty-backend/src/utils"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Dashboard  *controllers.DashboardController
	Duties     *controllers.DutyController
	Attendance *controllers.AttendanceController
	Scholars   *controllers.ScholarController
	Jobs       *controllers.JobsController
}

var (
	anyRole   = middleware.RequireRole(utils.RoleAdmin, utils.RoleChecker, utils.RoleFacilitator)
	adminOnly = middleware.RequireRole(utils.RoleAdmin)
	// checkers encode attendance at the desks
	encoders = middleware.RequireRole(utils.RoleAdmin, utils.RoleChecker)
)

func InitRoutes(app *fiber.App, h Controllers, jwtSecret []byte) {
	api := app.Group("/api", middleware.AuthJWT(jwtSecret))

	dashboardRoutes(api, h.Dashboard)
	dutyRoutes(api, h.Duties)
	attendanceRoutes(api, h.Attendance)
	scholarRoutes(api, h.Scholars)
	adminRoutes(api, h.Jobs)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

func dashboardRoutes(api fiber.Router, dc *controllers.DashboardController) {
	dashboard := api.Group("/dashboard")
	dashboard.Get("/rate", anyRole, dc.GetRate)
	dashboard.Get("/daily", adminOnly, dc.GetDailyRates)
	dashboard.Get("/scholars", adminOnly, dc.GetScholarRates)
	dashboard.Get("/today/:scholarId", anyRole, dc.GetTodayStatus)
	dashboard.Get("/trends", anyRole, dc.GetTrends)
	dashboard.Get("/summary", anyRole, dc.GetSummary)
}

func dutyRoutes(api fiber.Router, dc *controllers.DutyController) {
	duties := api.Group("/duties")
	duties.Get("/", anyRole, dc.GetDuties)
	duties.Post("/", adminOnly, dc.CreateDuty)
	duties.Put("/:id", adminOnly, dc.UpdateDuty)
	duties.Patch("/:id/status", adminOnly, dc.SetDutyStatus)
}

func attendanceRoutes(api fiber.Router, ac *controllers.AttendanceController) {
	attendance := api.Group("/attendance")
	attendance.Get("/", anyRole, ac.GetAttendance)
	attendance.Post("/checkin", encoders, ac.CheckIn)
	attendance.Post("/checkout", encoders, ac.CheckOut)
}

func scholarRoutes(api fiber.Router, sc *controllers.ScholarController) {
	scholars := api.Group("/scholars")
	scholars.Get("/", anyRole, sc.GetScholars)
	scholars.Get("/:id", anyRole, sc.GetScholarByID)
	scholars.Get("/:id/qrcode", anyRole, sc.GetScholarQRCode)
	scholars.Post("/", adminOnly, sc.CreateScholar)
}

func adminRoutes(api fiber.Router, jc *controllers.JobsController) {
	admin := api.Group("/admin", adminOnly)
	admin.Post("/jobs/refresh", jc.TriggerRefresh)
	admin.Post("/jobs/refresh-now", jc.RunRefreshNow)
}
