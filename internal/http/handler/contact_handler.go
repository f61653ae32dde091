package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/http/middleware"
	"github.com/webfolio/portfolio-api/internal/service"
	"go.uber.org/zap"
)

// ContactHandler handles the site contact form
type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Submit godoc
// @Summary Send a contact request
// @Description Emails the site owner. A valid quoteData is rendered as a PDF and attached. Without an email provider the request is accepted in development mode.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body domain.ContactRequest true "Contact form"
// @Success 200 {object} domain.ContactResponse
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(h.logger, r)

	var req domain.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.contactService.Submit(r.Context(), &req, middleware.ClientIP(r))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, inputMessage(err))
			return
		}
		log.Error("failed to process contact request", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, domain.APIError{
			Type:    domain.ErrorTypeInternal,
			Title:   http.StatusText(http.StatusInternalServerError),
			Status:  http.StatusInternalServerError,
			Message: "Failed to send message",
			Detail:  strings.TrimPrefix(err.Error(), service.ErrUpstreamFailure.Error()+": "),
		})
		return
	}

	resp := domain.ContactResponse{
		Success:      true,
		Message:      "Your message has been sent",
		SubmissionID: result.SubmissionID,
	}
	if result.DevMode {
		resp.DevMode = true
		resp.Message = "Message received (development mode: email not sent)"
	}
	respondJSON(w, http.StatusOK, resp)
}
