package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FintrackGolang/internal/entity"
	jwtPkg "FintrackGolang/pkg/jwt"
)

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := New(logger)

	app := fiber.New()
	app.Get("/protected", mw.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(entity.UserLoginData)
		return c.JSON(fiber.Map{"user_id": user.ID})
	})

	return app
}

func TestTokenMiddleware(t *testing.T) {
	t.Run("rejects requests without a token", func(t *testing.T) {
		app := newProtectedApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects malformed authorization headers", func(t *testing.T) {
		app := newProtectedApp(t)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")

		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects tokens missing identity claims", func(t *testing.T) {
		app := newProtectedApp(t)

		token, _, err := jwtPkg.Sign(map[string]interface{}{"id": "user-1"}, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("accepts a valid token and exposes the user", func(t *testing.T) {
		app := newProtectedApp(t)

		token, _, err := jwtPkg.Sign(map[string]interface{}{
			"id":       "user-1",
			"email":    "user@example.com",
			"username": "user",
		}, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
