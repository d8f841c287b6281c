package auth_test

import (
	"net/http/httptest"
	"testing"

	"showroom-audit/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/inventory", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		key    string
		status int
	}{
		{"Disabled", auth.Config{}, "/inventory", "", 200},
		{"Missing", auth.Config{ApiKey: "secret"}, "/inventory", "", 401},
		{"Wrong", auth.Config{ApiKey: "secret"}, "/inventory", "nope", 401},
		{"Valid", auth.Config{ApiKey: "secret"}, "/inventory", "secret", 200},
		{"Skipped", auth.Config{ApiKey: "secret", Skip: []string{"/metrics"}}, "/metrics", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(auth.Header, tt.key)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
