package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/repository"
	"github.com/webfolio/portfolio-api/internal/service"
	"go.uber.org/zap"
)

var submissionStatuses = map[domain.SubmissionStatus]bool{
	domain.SubmissionStatusReceived: true,
	domain.SubmissionStatusSent:     true,
	domain.SubmissionStatusDevMode:  true,
	domain.SubmissionStatusFailed:   true,
}

// AdminHandler serves the received contact submissions. The submission
// service is nil when the lead store is disabled.
type AdminHandler struct {
	submissionService *service.SubmissionService
	logger            *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(submissionService *service.SubmissionService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// ListSubmissions godoc
// @Summary List contact submissions
// @Description Newest first, with optional filters
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param status query string false "Delivery status" Enums(received, sent, dev_mode, failed)
// @Param search query string false "Search by name, email or company"
// @Param hasQuote query bool false "Only submissions with (or without) a quote"
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Failure 401 {string} string "Unauthorized"
// @Failure 503 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /api/admin/submissions [get]
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	filters := &repository.SubmissionFilters{
		Search: strings.TrimSpace(q.Get("search")),
	}
	if status := q.Get("status"); status != "" {
		st := domain.SubmissionStatus(status)
		if !submissionStatuses[st] {
			respondWithError(w, http.StatusBadRequest, "Invalid status: must be one of received, sent, dev_mode, failed")
			return
		}
		filters.Status = st
	}
	if hasQuote := q.Get("hasQuote"); hasQuote != "" {
		v, err := strconv.ParseBool(hasQuote)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid hasQuote: must be true or false")
			return
		}
		filters.HasQuote = &v
	}

	result, err := h.submissionService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to list submissions")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// SubmissionStats godoc
// @Summary Count submissions per status
// @Tags Admin
// @Produce json
// @Success 200 {object} domain.SubmissionStatsResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 503 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /api/admin/submissions/stats [get]
func (h *AdminHandler) SubmissionStats(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	counts, err := h.submissionService.Stats(r.Context())
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to count submissions")
		return
	}

	resp := domain.SubmissionStatsResponse{ByStatus: counts}
	for _, n := range counts {
		resp.Total += n
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetSubmission godoc
// @Summary Get a contact submission
// @Tags Admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} domain.SubmissionDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /api/admin/submissions/{id} [get]
func (h *AdminHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	id, ok := parseID(w, r, "id", "submission ID")
	if !ok {
		return
	}

	dto, err := h.submissionService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to get submission")
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// DownloadDocument godoc
// @Summary Download the archived quote of a submission
// @Tags Admin
// @Produce application/pdf
// @Param id path string true "Submission ID"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /api/admin/submissions/{id}/document [get]
func (h *AdminHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	id, ok := parseID(w, r, "id", "submission ID")
	if !ok {
		return
	}

	doc, err := h.submissionService.Document(r.Context(), id)
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to download document")
		return
	}
	defer doc.Body.Close()

	w.Header().Set("Content-Disposition", "attachment; filename=\""+doc.Filename+"\"")
	w.Header().Set("Content-Type", doc.ContentType)

	if _, err := io.Copy(w, doc.Body); err != nil {
		h.logger.Warn("failed to stream document", zap.String("submission_id", id.String()), zap.Error(err))
	}
}

func (h *AdminHandler) available(w http.ResponseWriter) bool {
	if h.submissionService == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Submission store is not enabled")
		return false
	}
	return true
}
