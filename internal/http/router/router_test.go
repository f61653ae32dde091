package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/auth"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/http/handler"
	"github.com/webfolio/portfolio-api/internal/http/middleware"
	"github.com/webfolio/portfolio-api/internal/http/router"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/session"
	"go.uber.org/zap"
)

const testAPIKey = "k3y-for-tests"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := zap.NewNop()

	c, err := catalog.Default()
	require.NoError(t, err)

	cfg := &config.Config{
		App:    config.AppConfig{Name: "Portfolio API", Environment: "production"},
		Server: config.ServerConfig{MaxBodyKB: 256, EnableSwagger: true},
		Admin:  config.AdminConfig{APIKey: testAPIKey, JWTSecret: "jwt-secret", JWTIssuer: "portfolio-api"},
		Quote:  config.QuoteConfig{ValidityDays: 30, IssuerName: "Studio Web"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"https://studio.example"}},
		Security: config.SecurityConfig{
			FrameOptions:       "DENY",
			ContentTypeNosniff: true,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:             true,
			RequestsPerMinute:   1000,
			FormRequestsPerHour: 1,
		},
	}

	authMiddleware := auth.NewMiddleware(&cfg.Admin, log)
	quotes := service.NewQuoteService(c, &cfg.Quote, log)
	simulator := service.NewSimulatorService(c, session.NewMemoryStore(time.Hour), log)
	contact := service.NewContactService(c, quotes, nil, nil, nil, nil, cfg, log)

	return router.NewRouter(
		cfg,
		log,
		authMiddleware,
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewHealthHandler(nil, log),
		handler.NewSimulatorHandler(simulator, log),
		handler.NewQuoteHandler(quotes, log),
		handler.NewContactHandler(contact, log),
		handler.NewAdminHandler(nil, log),
		handler.NewAuthHandler(authMiddleware.Validator(), log),
	).Setup()
}

func serve(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	h := newTestRouter(t)

	w := serve(h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = serve(h, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(h, http.MethodGet, "/api/catalog", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "projectTypes")

	w = serve(h, http.MethodPost, "/api/simulator/sessions", "", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/api/simulator/sessions/"))

	w = serve(h, http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/generate-quote-pdf")
}

func TestRouter_Preflight(t *testing.T) {
	h := newTestRouter(t)

	w := serve(h, http.MethodOptions, "/api/contact", "", map[string]string{
		"Origin":                        "https://studio.example",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, "https://studio.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_AdminRequiresCredentials(t *testing.T) {
	h := newTestRouter(t)

	w := serve(h, http.MethodGet, "/api/admin/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "no-store, max-age=0", w.Header().Get("Cache-Control"))

	w = serve(h, http.MethodGet, "/api/admin/me", "", map[string]string{"x-api-key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(h, http.MethodGet, "/api/admin/me", "", map[string]string{"x-api-key": testAPIKey})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"method":"api_key"`)

	w = serve(h, http.MethodGet, "/api/admin/submissions", "", map[string]string{"x-api-key": testAPIKey})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "no lead store configured")
}

func TestRouter_AdminTokenRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	w := serve(h, http.MethodPost, "/api/admin/token", `{"subject":"laptop"}`, map[string]string{"x-api-key": testAPIKey})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var token struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsonDecode(w, &token))

	bearer := map[string]string{"Authorization": "Bearer " + token.Token}
	w = serve(h, http.MethodGet, "/api/admin/me", "", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"laptop"`)

	w = serve(h, http.MethodPost, "/api/admin/token", `{"subject":"other"}`, bearer)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_FormRateLimit(t *testing.T) {
	h := newTestRouter(t)

	w := serve(h, http.MethodPost, "/api/generate-quote-pdf", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(h, http.MethodPost, "/api/contact", `{}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "form endpoints share one hourly budget")

	w = serve(h, http.MethodGet, "/api/catalog", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "the general limit is separate")
}

func jsonDecode(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}
