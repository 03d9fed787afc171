package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/server/httpserver"
)

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})

	app.Get("/notfound", func(ctx *fiber.Ctx) error {
		return pgerr.ErrNotFound.Msg("run not found")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return pgerr.ErrConflict.Msg("character already assigned to this run").
			WithExtras(pgerr.Extras{"characterId": 7})
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.ErrTeapot
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("unexpected failure")
	})

	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerPlannerError(t *testing.T) {
	t.Parallel()
	app := testApp()

	status, body := getJSON(t, app, "/notfound")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, pgerr.CodeNotFound, body["code"])
	assert.Equal(t, "run not found", body["message"])
}

func TestErrorHandlerExtrasFlattened(t *testing.T) {
	t.Parallel()
	app := testApp()

	status, body := getJSON(t, app, "/conflict")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, pgerr.CodeConflict, body["code"])
	assert.EqualValues(t, 7, body["characterId"])
}

func TestErrorHandlerFiberError(t *testing.T) {
	t.Parallel()
	app := testApp()

	status, body := getJSON(t, app, "/fiber")
	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Equal(t, "UNKNOWN_ERROR", body["code"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	t.Parallel()
	app := testApp()

	status, body := getJSON(t, app, "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, pgerr.CodeInternalError, body["code"])
	// internal details must not leak to the client
	assert.NotContains(t, body["message"], "unexpected failure")
}

// The unknown-error path reads the request-scoped sentry hub, which only
// exists when the fibersentry middleware ran. It must degrade gracefully in
// either case rather than panic.
func TestErrorHandlerSentryHubOptional(t *testing.T) {
	t.Parallel()

	t.Run("without middleware", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
		app.Get("/boom", func(ctx *fiber.Ctx) error {
			return errors.New("unexpected failure")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("with middleware", func(t *testing.T) {
		app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
		app.Use(fibersentry.New(fibersentry.Config{}))
		app.Get("/boom", func(ctx *fiber.Ctx) error {
			return errors.New("unexpected failure")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
