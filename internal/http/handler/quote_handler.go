package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/service"
	"go.uber.org/zap"
)

// QuoteHandler renders validated quotes as downloadable documents
type QuoteHandler struct {
	quoteService *service.QuoteService
	logger       *zap.Logger
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *service.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// GeneratePDF godoc
// @Summary Generate a quote PDF
// @Description Validates a simulator quote snapshot, recomputes its pricing and returns it as a PDF attachment
// @Tags Quotes
// @Accept json
// @Produce application/pdf
// @Param request body domain.GenerateQuoteRequest true "Quote snapshot"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /api/generate-quote-pdf [post]
func (h *QuoteHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, service.FormatPDF)
}

// GenerateXLSX godoc
// @Summary Generate a quote spreadsheet
// @Description Same contract as the PDF endpoint with an XLSX workbook as output
// @Tags Quotes
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body domain.GenerateQuoteRequest true "Quote snapshot"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 429 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /api/generate-quote-xlsx [post]
func (h *QuoteHandler) GenerateXLSX(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, service.FormatXLSX)
}

func (h *QuoteHandler) generate(w http.ResponseWriter, r *http.Request, format string) {
	var req domain.GenerateQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doc, err := h.quoteService.Generate(r.Context(), &req, format)
	if err != nil {
		handleServiceError(w, requestLogger(h.logger, r), err, "Failed to generate quote document")
		return
	}

	writeDocument(w, doc.Filename, doc.ContentType, doc.Content)
}

// writeDocument sends generated bytes as an uncacheable attachment
func writeDocument(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
