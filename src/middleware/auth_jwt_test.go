package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-duty-backend/src/utils"
)

var secret = []byte("0123456789abcdef0123")

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", AuthJWT(secret), RequireRole(utils.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	app := newApp()

	adminToken, err := utils.GenerateJWT(secret, "u-1", "admin@school.edu", utils.RoleAdmin)
	require.NoError(t, err)
	checkerToken, err := utils.GenerateJWT(secret, "u-2", "checker@school.edu", utils.RoleChecker)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer abc", fiber.StatusUnauthorized},
		{"wrong role", "Bearer " + checkerToken, fiber.StatusForbidden},
		{"admin", "Bearer " + adminToken, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
