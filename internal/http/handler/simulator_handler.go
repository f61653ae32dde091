package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/service"
	"go.uber.org/zap"
)

// SimulatorHandler exposes the pricing catalog and simulator sessions
type SimulatorHandler struct {
	simulatorService *service.SimulatorService
	logger           *zap.Logger
}

// NewSimulatorHandler creates a new SimulatorHandler
func NewSimulatorHandler(simulatorService *service.SimulatorService, logger *zap.Logger) *SimulatorHandler {
	return &SimulatorHandler{
		simulatorService: simulatorService,
		logger:           logger,
	}
}

// Catalog godoc
// @Summary Get the pricing catalog
// @Description Returns every project type and option the simulator offers, in display order
// @Tags Simulator
// @Produce json
// @Success 200 {object} catalog.Catalog
// @Router /api/catalog [get]
func (h *SimulatorHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.simulatorService.Catalog())
}

// Estimate godoc
// @Summary Price a selection
// @Description Applies a selection to an empty simulator and returns the normalised state with its quote snapshot. Unknown ids are rejected.
// @Tags Simulator
// @Accept json
// @Produce json
// @Param request body domain.EstimateRequest true "Selection"
// @Success 200 {object} domain.EstimateResponse
// @Failure 400 {object} domain.APIError
// @Router /api/simulator/estimate [post]
func (h *SimulatorHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	resp, err := h.simulatorService.Estimate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to estimate selection")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// CreateSession godoc
// @Summary Start a simulator session
// @Tags Simulator
// @Produce json
// @Success 201 {object} domain.SessionDTO
// @Failure 500 {object} domain.APIError
// @Router /api/simulator/sessions [post]
func (h *SimulatorHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.simulatorService.CreateSession(r.Context())
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to create session")
		return
	}
	w.Header().Set("Location", "/api/simulator/sessions/"+sess.ID.String())
	respondJSON(w, http.StatusCreated, sess)
}

// GetSession godoc
// @Summary Get a simulator session
// @Tags Simulator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /api/simulator/sessions/{id} [get]
func (h *SimulatorHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	h.respondSession(w, r)(h.simulatorService.GetSession(r.Context(), id))
}

// ResetSession godoc
// @Summary Reset a simulator session
// @Description Clears every selection and keeps the session id
// @Tags Simulator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/reset [post]
func (h *SimulatorHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	h.respondSession(w, r)(h.simulatorService.ResetSession(r.Context(), id))
}

// DeleteSession godoc
// @Summary Delete a simulator session
// @Tags Simulator
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} domain.APIError
// @Router /api/simulator/sessions/{id} [delete]
func (h *SimulatorHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	if err := h.simulatorService.DeleteSession(r.Context(), id); err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetProjectType godoc
// @Summary Select the project type
// @Description An empty projectType clears the selection
// @Tags Simulator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body domain.SetProjectTypeRequest true "Project type"
// @Success 200 {object} domain.SessionDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/project-type [put]
func (h *SimulatorHandler) SetProjectType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	var req domain.SetProjectTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	h.respondSession(w, r)(h.simulatorService.SetProjectType(r.Context(), id, req.ProjectType))
}

// Toggle godoc
// @Summary Toggle an option
// @Description Selecting a design option or technical feature also selects its prerequisites. Deselecting removes the options that directly require it.
// @Tags Simulator
// @Produce json
// @Param id path string true "Session ID"
// @Param group path string true "Option group" Enums(design, technical, maintenance, performance)
// @Param optionId path string true "Option ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/{group}/{optionId}/toggle [post]
func (h *SimulatorHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	h.respondSession(w, r)(h.simulatorService.Toggle(r.Context(), id, chi.URLParam(r, "group"), chi.URLParam(r, "optionId")))
}

// SetSection godoc
// @Summary Add or change a page section
// @Tags Simulator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param sectionId path string true "Section ID"
// @Param request body domain.SetSectionRequest true "Section level"
// @Success 200 {object} domain.SessionDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/sections/{sectionId} [put]
func (h *SimulatorHandler) SetSection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	var req domain.SetSectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	h.respondSession(w, r)(h.simulatorService.SetSection(r.Context(), id, chi.URLParam(r, "sectionId"), req.Level))
}

// RemoveSection godoc
// @Summary Remove a page section
// @Tags Simulator
// @Produce json
// @Param id path string true "Session ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/sections/{sectionId} [delete]
func (h *SimulatorHandler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	h.respondSession(w, r)(h.simulatorService.RemoveSection(r.Context(), id, chi.URLParam(r, "sectionId")))
}

// SetContent godoc
// @Summary Set a content quantity
// @Description A quantity of zero or less removes the option
// @Tags Simulator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param optionId path string true "Content option ID"
// @Param request body domain.SetContentRequest true "Quantity"
// @Success 200 {object} domain.SessionDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/content/{optionId} [put]
func (h *SimulatorHandler) SetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	var req domain.SetContentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}
	h.respondSession(w, r)(h.simulatorService.SetContent(r.Context(), id, chi.URLParam(r, "optionId"), req.Quantity))
}

// Quote godoc
// @Summary Snapshot the session as a quote
// @Description The returned object can be posted as quoteData to the document and contact endpoints
// @Tags Simulator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.QuoteData
// @Failure 404 {object} domain.APIError
// @Router /api/simulator/sessions/{id}/quote [get]
func (h *SimulatorHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "session ID")
	if !ok {
		return
	}
	q, err := h.simulatorService.Quote(r.Context(), id)
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to build quote")
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// respondSession writes the outcome of a session operation
func (h *SimulatorHandler) respondSession(w http.ResponseWriter, r *http.Request) func(*domain.SessionDTO, error) {
	return func(sess *domain.SessionDTO, err error) {
		if err != nil {
			handleServiceError(w, requestLogger(h.logger, r), err, "Failed to update session")
			return
		}
		respondJSON(w, http.StatusOK, sess)
	}
}
