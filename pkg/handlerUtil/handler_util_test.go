package handlerUtil

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FintrackGolang/internal/api/automation"
	"FintrackGolang/internal/entity"
)

func newErrorApp(err error) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	errHandler := New(logger)

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-1", err, c.Path(), "test_operation")
	})

	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	raw, err := io.ReadAll(resp)
	require.NoError(t, err)
	require.NoError(t, jsoniter.Unmarshal(raw, &body))
	return body
}

func TestHandleRuleConflict(t *testing.T) {
	conflicting := entity.AutomationRule{
		ID:              "rule-1",
		UserID:          "user-1",
		Name:            "Netflix rule",
		IsActive:        true,
		MerchantPattern: "Netflix",
	}

	app := newErrorApp(&automation.ConflictError{Rule: conflicting})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "RULE_CONFLICT", body["code"])

	conflict, ok := body["conflict"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "rule-1", conflict["id"])
	assert.Equal(t, "Netflix", conflict["merchant_pattern"])
}

func TestHandleCodedError(t *testing.T) {
	app := newErrorApp(automation.ErrRuleNotFound)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "automation rule not found", body["error"])
}

func TestHandleUnknownError(t *testing.T) {
	app := newErrorApp(errors.New("connection reset"))

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "An unexpected error occurred", body["error"])
}
