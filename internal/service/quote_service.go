package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/quote"
	"go.uber.org/zap"
)

// Document formats served by the quote endpoints
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// GeneratedDocument is a rendered quote ready to be sent or downloaded
type GeneratedDocument struct {
	Filename    string
	ContentType string
	Content     []byte
	Number      string
	Quote       domain.QuoteData
}

// QuoteService validates submitted quotes and renders them
type QuoteService struct {
	validator    *quote.Validator
	renderers    map[string]quote.Renderer
	issuer       quote.Issuer
	validityDays int
	logger       *zap.Logger
	now          func() time.Time
}

func NewQuoteService(c *catalog.Catalog, cfg *config.QuoteConfig, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		validator: quote.NewValidator(c),
		renderers: map[string]quote.Renderer{
			FormatPDF:  quote.NewPDFRenderer(c),
			FormatXLSX: quote.NewXLSXRenderer(c),
		},
		issuer: quote.Issuer{
			Name:    cfg.IssuerName,
			Title:   cfg.IssuerTitle,
			Email:   cfg.IssuerEmail,
			Phone:   cfg.IssuerPhone,
			Website: cfg.IssuerWebsite,
			Address: cfg.IssuerAddress,
			Siret:   cfg.IssuerSiret,
		},
		validityDays: cfg.ValidityDays,
		logger:       logger,
		now:          time.Now,
	}
}

// Validate checks raw quote data and returns it with server-side figures
func (s *QuoteService) Validate(ctx context.Context, raw json.RawMessage) (*quote.Result, error) {
	res, err := s.validator.Validate(raw)
	if err != nil {
		if errors.Is(err, quote.ErrInvalidQuote) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("failed to validate quote: %w", err)
	}

	if res.Dropped > 0 {
		s.logger.Info("Dropped invalid quote entries", zap.Int("dropped", res.Dropped))
	}
	if res.PricingMismatch() {
		s.logger.Warn("Submitted quote pricing differs from server pricing",
			zap.Float64("submitted_subtotal", res.Submitted.Subtotal),
			zap.Float64("server_subtotal", res.Quote.Pricing.Subtotal),
			zap.Float64("submitted_total", res.Submitted.Total),
			zap.Float64("server_total", res.Quote.Pricing.Total),
		)
	}
	return res, nil
}

// Generate validates req and renders it in the requested format
func (s *QuoteService) Generate(ctx context.Context, req *domain.GenerateQuoteRequest, format string) (*GeneratedDocument, error) {
	if len(req.QuoteData) == 0 || string(req.QuoteData) == "null" {
		return nil, fmt.Errorf("%w: quoteData is required", ErrInvalidInput)
	}
	res, err := s.Validate(ctx, req.QuoteData)
	if err != nil {
		return nil, err
	}
	return s.Render(ctx, res.Quote, req.ClientName, req.QuoteNumber, format)
}

// Render produces a document for an already validated quote. Free-text
// fields are sanitised here so every caller gets the same treatment.
func (s *QuoteService) Render(ctx context.Context, q domain.QuoteData, clientName, quoteNumber, format string) (*GeneratedDocument, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported document format %q", ErrInvalidInput, format)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	doc := quote.Document{
		Quote:        q,
		ClientName:   quote.SanitizeText(clientName, quote.MaxClientNameLength),
		QuoteNumber:  quote.SanitizeText(quoteNumber, quote.MaxQuoteNumberLength),
		Issuer:       s.issuer,
		ValidityDays: s.validityDays,
		IssuedAt:     now,
	}

	content, err := renderer.Render(doc)
	if err != nil {
		s.logger.Error("Failed to render quote", zap.String("format", format), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	return &GeneratedDocument{
		Filename:    quote.Filename(doc.ClientName, now, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
		Number:      doc.Number(),
		Quote:       q,
	}, nil
}
