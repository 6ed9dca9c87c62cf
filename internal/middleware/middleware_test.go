package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	payloads map[string]*utils.SessionPayload
}

func (s stubSessions) ValidateSession(token string) *utils.SessionPayload {
	return s.payloads[token]
}

var testCookie = utils.CookieConfig{Name: "token", MaxAge: 24 * time.Hour}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandlerMiddleware(internal_i18n.NewInitI18nService()),
	})
	app.Use(recover.New())
	app.Use(RequestIDMiddleware())
	app.Use(AcceptLanguageMiddleware())
	app.Use(LoggerMiddleware())
	return app
}

func sessions() stubSessions {
	return stubSessions{payloads: map[string]*utils.SessionPayload{
		"root-token":  {ID: "a-1", UserID: "root", Role: "super_admin"},
		"alice-token": {ID: "a-2", UserID: "alice", Role: "admin", OrgID: "org-1"},
		"orphan":      {ID: "a-3", UserID: "orphan", Role: "admin"},
	}}
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	app := newTestApp()
	app.Get("/p", AuthMiddleware(sessions(), testCookie), func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)

	assert.Equal(t, 401, resp.StatusCode)
	setCookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, setCookie, "token=;")
	assert.Contains(t, setCookie, "1970")

	body := decode(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "error", body["status"])
	errObj := body["error"].(map[string]any)
	assert.Equal(t, app_errors.ErrUnauthorized, errObj["type"])
	assert.NotEmpty(t, errObj["request_id"])
}

func TestAuthMiddleware_InvalidTokenClearsCookie(t *testing.T) {
	app := newTestApp()
	app.Get("/p", AuthMiddleware(sessions(), testCookie), func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Cookie", "token=tampered")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 401, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "token=;")
}

func TestAuthMiddleware_SetsLocals(t *testing.T) {
	app := newTestApp()
	app.Get("/p", AuthMiddleware(sessions(), testCookie), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"userid":  c.Locals("userid"),
			"role":    c.Locals("role"),
			"org_id":  c.Locals("org_id"),
		})
	})

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Cookie", "token=alice-token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Set-Cookie"))
	body := decode(t, resp.Body)
	assert.Equal(t, "a-2", body["user_id"])
	assert.Equal(t, "alice", body["userid"])
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, "org-1", body["org_id"])
}

func TestPageAuthMiddleware_RedirectsToLogin(t *testing.T) {
	app := newTestApp()
	app.Get("/dashboard", PageAuthMiddleware(sessions(), testCookie), func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)

	assert.Equal(t, 303, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireRoles(t *testing.T) {
	app := newTestApp()
	app.Post("/orgs", AuthMiddleware(sessions(), testCookie), RequireRoles("super_admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(201)
	})

	cases := map[string]int{
		"root-token":  201,
		"alice-token": 403,
	}
	for token, want := range cases {
		req := httptest.NewRequest("POST", "/orgs", nil)
		req.Header.Set("Cookie", "token="+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, token)
	}
}

func TestRequireRoles_NoRoleIs401(t *testing.T) {
	app := newTestApp()
	app.Get("/x", RequireRoles("super_admin"), func(c *fiber.Ctx) error { return c.SendStatus(200) })

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireTenantAccess(t *testing.T) {
	app := newTestApp()
	app.Get("/orgs/:orgId/details", AuthMiddleware(sessions(), testCookie), RequireTenantAccess("orgId"), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	cases := []struct {
		token string
		org   string
		want  int
	}{
		{"alice-token", "org-1", 200},
		{"alice-token", "org-2", 403},
		{"root-token", "org-2", 200},
		{"orphan", "org-1", 403},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/orgs/"+tc.org+"/details", nil)
		req.Header.Set("Cookie", "token="+tc.token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "%s -> %s", tc.token, tc.org)
	}
}

func TestCanAccessTenant(t *testing.T) {
	assert.True(t, CanAccessTenant("super_admin", "", "anything"))
	assert.True(t, CanAccessTenant("admin", "org-1", "org-1"))
	assert.False(t, CanAccessTenant("admin", "org-1", "org-2"))
	assert.False(t, CanAccessTenant("admin", "", ""))
}

func TestErrorHandler_RetryAfterAndTranslation(t *testing.T) {
	app := newTestApp()
	app.Post("/login", func(c *fiber.Ctx) error {
		return app_errors.NewRateLimitError(90*time.Second + 200*time.Millisecond)
	})

	req := httptest.NewRequest("POST", "/login", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.8")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 429, resp.StatusCode)
	assert.Equal(t, "91", resp.Header.Get("Retry-After"))
	body := decode(t, resp.Body)
	assert.Equal(t, "Zu viele fehlgeschlagene Anmeldeversuche. Bitte später erneut versuchen.", body["message"])
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	app := newTestApp()
	app.Post("/v", func(c *fiber.Ctx) error {
		return app_errors.NewValidationError([]app_errors.FieldError{
			{Field: "name", Reason: "min", MessageKey: "validation.min", Params: map[string]any{"min": "2"}},
		})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/v", nil))
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	body := decode(t, resp.Body)
	details := body["error"].(map[string]any)["details"].([]any)
	require.Len(t, details, 1)
	d := details[0].(map[string]any)
	assert.Equal(t, "name", d["field"])
	assert.Equal(t, "Must be at least 2 characters.", d["message"])
}

func TestErrorHandler_FiberErrorKeepsCode(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, app_errors.ErrNotFound, body["error"].(map[string]any)["type"])
}

func TestErrorHandler_PanicAndPlainErrorAre500(t *testing.T) {
	app := newTestApp()
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("db password is hunter2") })

	for _, path := range []string{"/panic", "/plain"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode, path)

		raw, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(raw), "hunter2")
		assert.NotContains(t, string(raw), "boom")
	}
}

func TestRequestID_HonorsIncomingAndGenerates(t *testing.T) {
	app := newTestApp()
	app.Get("/id", func(c *fiber.Ctx) error { return c.SendString(c.Locals("request_id").(string)) })

	req := httptest.NewRequest("GET", "/id", nil)
	req.Header.Set("X-Request-ID", "SP-fixed")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "SP-fixed", resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest("GET", "/id", nil))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Header.Get("X-Request-ID"), "SP-"))
}

func TestAcceptLanguage(t *testing.T) {
	app := newTestApp()
	app.Get("/lang", func(c *fiber.Ctx) error { return c.SendString(c.Locals("lang").(string)) })

	cases := map[string]string{
		"":                        "en",
		"de-DE,de;q=0.9":          "de",
		"fr-FR,fr;q=0.9":          "en",
		"fr;q=0.9,de-AT;q=0.8":    "de",
		"en;q=0.5,de":             "de",
		"en-US,en;q=0.9,de;q=0.8": "en",
		// Gleiche Gewichtung: die zuerst genannte Sprache gewinnt.
		"en-US,en;q=0.9,de;q=1": "en",
	}
	for header, want := range cases {
		req := httptest.NewRequest("GET", "/lang", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		raw, _ := io.ReadAll(resp.Body)
		assert.Equal(t, want, string(raw), header)
	}
}
