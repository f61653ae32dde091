package handler

import (
	"net/http"
	"time"

	"github.com/webfolio/portfolio-api/internal/auth"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/logger"
	"go.uber.org/zap"
)

const defaultTokenTTL = 8 * time.Hour

// TokenIssuer signs admin bearer tokens
type TokenIssuer interface {
	Enabled() bool
	IssueToken(subject, name string, ttl time.Duration) (string, error)
}

type AuthHandler struct {
	issuer TokenIssuer
	now    func() time.Time
	logger *zap.Logger
}

func NewAuthHandler(issuer TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		issuer: issuer,
		now:    time.Now,
		logger: logger,
	}
}

// Me godoc
// @Summary Get the authenticated admin
// @Tags Admin
// @Produce json
// @Success 200 {object} domain.PrincipalDTO
// @Failure 401 {string} string "Unauthorized"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /api/admin/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, domain.PrincipalDTO{
		Subject: p.Subject,
		Name:    p.Name,
		Method:  p.Method,
		Roles:   p.Roles,
	})
}

// IssueToken godoc
// @Summary Mint an admin bearer token
// @Description Only callers authenticated with the API key may mint tokens. ttlMinutes defaults to 480.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body domain.IssueTokenRequest true "Token subject"
// @Success 201 {object} domain.TokenResponse
// @Failure 400 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 503 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /api/admin/token [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if p.Method != auth.MethodAPIKey {
		respondWithError(w, http.StatusForbidden, "Tokens can only be issued with the API key")
		return
	}
	if !h.issuer.Enabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Token signing is not configured")
		return
	}

	var req domain.IssueTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	ttl := defaultTokenTTL
	if req.TTLMinutes > 0 {
		ttl = time.Duration(req.TTLMinutes) * time.Minute
	}
	expiresAt := h.now().Add(ttl)

	token, err := h.issuer.IssueToken(req.Subject, req.Name, ttl)
	if err != nil {
		requestLogger(h.logger, r).Error("failed to issue token", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	logger.WithPrincipal(requestLogger(h.logger, r), p.Subject, p.Method).Info("issued admin token",
		zap.String("subject", req.Subject),
		zap.Duration("ttl", ttl))

	respondJSON(w, http.StatusCreated, domain.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
