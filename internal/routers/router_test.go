package routers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	app_errors "github.com/Xenn-00/signatur-portal/internal/errors"
	internal_i18n "github.com/Xenn-00/signatur-portal/internal/i18n"
	"github.com/Xenn-00/signatur-portal/internal/middleware"
	"github.com/Xenn-00/signatur-portal/internal/throttle"
	use_cases "github.com/Xenn-00/signatur-portal/internal/use-cases"
	auth_case "github.com/Xenn-00/signatur-portal/internal/use-cases/auth-case"
	organization_case "github.com/Xenn-00/signatur-portal/internal/use-cases/organization-case"
	"github.com/Xenn-00/signatur-portal/internal/utils"
	"github.com/Xenn-00/signatur-portal/web"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app  *fiber.App
	repo *auth_case.MockAdminRepo
}

func newServer(t *testing.T, rl RateLimitConfig, checks ...ReadinessCheck) *testServer {
	t.Helper()

	maker, err := utils.NewPasetoMaker(utils.GenerateSymmetricKey())
	require.NoError(t, err)

	repo := new(auth_case.MockAdminRepo)
	limiter := throttle.NewLimiter(throttle.NewMemoryStore(throttle.DefaultWindow, 100), throttle.Config{})
	i18n := internal_i18n.NewInitI18nService()

	app := fiber.New(fiber.Config{
		Views:        html.NewFileSystem(http.FS(web.Templates()), ".html"),
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18n),
	})
	app.Use(middleware.RequestIDMiddleware(), middleware.AcceptLanguageMiddleware())

	if rl.Max == 0 {
		rl = RateLimitConfig{Max: 1000, Expiration: time.Minute}
	}

	SetupRoutes(app, Deps{
		Auth:          auth_case.NewAuthService(repo, maker, limiter, auth_case.SessionConfig{}),
		Organizations: organization_case.NewOrganizationService(new(organization_case.MockOrganizationRepo), &use_cases.MockCache{}, new(use_cases.MockTaskQueue)),
		I18n:          i18n,
		Cookie:        utils.CookieConfig{Name: "token", MaxAge: 24 * time.Hour},
		AppName:       "Signatur-Portal",
		RateLimit:     rl,
		Checks:        checks,
	})

	return &testServer{app: app, repo: repo}
}

func (s *testServer) do(t *testing.T, method, path, ip, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginThrottle_PerIP(t *testing.T) {
	s := newServer(t, RateLimitConfig{})
	s.repo.On("FindByUserID", mock.Anything, "ghost").
		Return(nil, app_errors.NewAppError(404, app_errors.ErrNotFound, "not_found", nil))

	body := `{"userid":"ghost","password":"whatever-123"}`
	for i := 0; i < 5; i++ {
		assert.Equal(t, 401, s.do(t, "POST", "/api/auth/login", "192.0.2.1", body).StatusCode)
	}
	assert.Equal(t, 429, s.do(t, "POST", "/api/auth/login", "192.0.2.1", body).StatusCode)

	// Andere IP ist nicht betroffen.
	assert.Equal(t, 401, s.do(t, "POST", "/api/auth/login", "192.0.2.2", body).StatusCode)
}

func TestGeneralLimiter(t *testing.T) {
	s := newServer(t, RateLimitConfig{Max: 2, Expiration: time.Minute})

	assert.Equal(t, 401, s.do(t, "GET", "/api/auth/verify", "192.0.2.9", "").StatusCode)
	assert.Equal(t, 401, s.do(t, "GET", "/api/auth/verify", "192.0.2.9", "").StatusCode)

	resp := s.do(t, "GET", "/api/auth/verify", "192.0.2.9", "")
	assert.Equal(t, 429, resp.StatusCode)

	// Health-Endpunkte liegen vor dem Limiter.
	assert.Equal(t, 200, s.do(t, "GET", "/api/healthz", "192.0.2.9", "").StatusCode)
}

func TestLimiterKey(t *testing.T) {
	app := fiber.New()
	app.Get("/key", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"key": limiterKey(c), "peer": c.IP()})
	})

	get := func(header, value string) map[string]string {
		req := httptest.NewRequest("GET", "/key", nil)
		if header != "" {
			req.Header.Set(header, value)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	direct := get("", "")
	assert.Equal(t, "api:"+direct["peer"], direct["key"])
	assert.NotEqual(t, "api:"+utils.UnknownClientIP, direct["key"])

	assert.Equal(t, "api:192.0.2.77", get("X-Forwarded-For", "192.0.2.77, 10.0.0.1")["key"])
	assert.Equal(t, "api:192.0.2.78", get("X-Real-IP", "192.0.2.78")["key"])
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	s := newServer(t, RateLimitConfig{})

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/organizations"},
		{"POST", "/api/organizations"},
		{"GET", "/api/organizations/org-1/details"},
		{"PUT", "/api/organizations/org-1"},
		{"DELETE", "/api/organizations/org-1"},
		{"GET", "/api/dashboard/stats"},
	} {
		resp := s.do(t, tc.method, tc.path, "", "")
		assert.Equal(t, 401, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestReadiness(t *testing.T) {
	ok := ReadinessCheck{Name: "Redis", Ping: func(context.Context) error { return nil }}
	down := ReadinessCheck{Name: "Datenbank", Ping: func(context.Context) error { return errors.New("connection refused") }}

	s := newServer(t, RateLimitConfig{}, ok)
	assert.Equal(t, 200, s.do(t, "GET", "/api/readyz", "", "").StatusCode)
	assert.Equal(t, 200, s.do(t, "GET", "/api/livez", "", "").StatusCode)

	s = newServer(t, RateLimitConfig{}, ok, down)
	assert.Equal(t, 503, s.do(t, "GET", "/api/readyz", "", "").StatusCode)
}

func TestPagesAndStatic(t *testing.T) {
	s := newServer(t, RateLimitConfig{})

	assert.Equal(t, 200, s.do(t, "GET", "/", "", "").StatusCode)
	assert.Equal(t, 200, s.do(t, "GET", "/login", "", "").StatusCode)
	assert.Equal(t, 200, s.do(t, "GET", "/static/app.css", "", "").StatusCode)

	resp := s.do(t, "GET", "/dashboard", "", "")
	assert.Equal(t, 303, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGeneralLimiter_RedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	storage := NewLimiterStorage(mr.Addr(), "", 1)
	t.Cleanup(func() { _ = storage.Close() })

	s := newServer(t, RateLimitConfig{Max: 1, Expiration: time.Minute, Storage: storage})

	assert.Equal(t, 401, s.do(t, "GET", "/api/auth/verify", "192.0.2.50", "").StatusCode)
	assert.Equal(t, 429, s.do(t, "GET", "/api/auth/verify", "192.0.2.50", "").StatusCode)
	assert.NotEmpty(t, mr.DB(1).Keys())
}
