package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/logger"
	"github.com/webfolio/portfolio-api/internal/mail"
	"github.com/webfolio/portfolio-api/internal/notify"
	"github.com/webfolio/portfolio-api/internal/quote"
	"github.com/webfolio/portfolio-api/internal/storage"
	"go.uber.org/zap"
)

// Mailer delivers an email and returns the provider message id
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}

// LeadNotifier alerts the site owner about a new lead
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead notify.Lead) error
}

// SubmissionStore persists contact submissions
type SubmissionStore interface {
	Create(ctx context.Context, s *domain.Submission) error
	Update(ctx context.Context, s *domain.Submission) error
}

// ContactResult is the outcome of an accepted contact request
type ContactResult struct {
	DevMode      bool
	SubmissionID *uuid.UUID
}

// ContactService handles the contact form. Only the quote validation and the
// owner email decide the response; persistence, archiving, notification and
// the confirmation email are best effort.
type ContactService struct {
	catalog     *catalog.Catalog
	quotes      *QuoteService
	mailer      Mailer
	notifier    LeadNotifier
	submissions SubmissionStore
	archive     storage.Storage
	mailCfg     config.MailConfig
	archiveDocs bool
	siteName    string
	logger      *zap.Logger
}

// NewContactService wires the contact flow. mailer, notifier, submissions and
// archive may be nil; without a mailer requests are accepted in dev mode.
func NewContactService(
	c *catalog.Catalog,
	quotes *QuoteService,
	mailer Mailer,
	notifier LeadNotifier,
	submissions SubmissionStore,
	archive storage.Storage,
	cfg *config.Config,
	logger *zap.Logger,
) *ContactService {
	siteName := cfg.Quote.IssuerName
	if siteName == "" {
		siteName = cfg.App.Name
	}
	return &ContactService{
		catalog:     c,
		quotes:      quotes,
		mailer:      mailer,
		notifier:    notifier,
		submissions: submissions,
		archive:     archive,
		mailCfg:     cfg.Mail,
		archiveDocs: cfg.Storage.ArchiveQuotes,
		siteName:    siteName,
		logger:      logger,
	}
}

// Submit validates the optional quote, emails the owner and records the lead
func (s *ContactService) Submit(ctx context.Context, req *domain.ContactRequest, ipAddress string) (*ContactResult, error) {
	sub := &domain.Submission{
		Name:      quote.SanitizeText(req.Name, quote.MaxClientNameLength),
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Budget:    req.Budget,
		Message:   req.Message,
		Status:    domain.SubmissionStatusReceived,
		IPAddress: ipAddress,
	}

	var doc *GeneratedDocument
	if req.HasQuote() {
		res, err := s.quotes.Validate(ctx, req.QuoteData)
		if err != nil {
			return nil, err
		}
		s.attachQuote(sub, res.Quote)

		doc, err = s.quotes.Render(ctx, res.Quote, req.Name, "", FormatPDF)
		if err != nil {
			// The lead is still worth delivering without its attachment
			s.logger.Warn("Failed to render contact quote, sending without attachment", zap.Error(err))
			doc = nil
		} else {
			sub.DocumentName = doc.Filename
		}
	}

	s.record(ctx, sub)
	if doc != nil {
		s.archiveDocument(ctx, sub, doc)
	}

	data := s.emailData(req, sub, doc)
	result := &ContactResult{SubmissionID: s.submissionID(sub)}

	if s.mailer == nil || !s.mailCfg.MailEnabled() {
		logger.WithLead(s.logger, sub.Email).Info("Email provider not configured, contact request not sent",
			zap.Bool("has_quote", sub.HasQuote()),
		)
		sub.Status = domain.SubmissionStatusDevMode
		s.save(ctx, sub)
		s.notify(ctx, sub, doc)
		result.DevMode = true
		return result, nil
	}

	var attachments []mail.Attachment
	if doc != nil {
		attachments = []mail.Attachment{{Filename: doc.Filename, ContentType: doc.ContentType, Content: doc.Content}}
	}

	msg, err := mail.OwnerMessage(s.mailCfg.To, s.mailCfg.SubjectPrefix, data, attachments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if _, err := s.mailer.Send(ctx, msg); err != nil {
		logger.WithLead(s.logger, sub.Email).Error("Failed to send contact email", zap.Error(err))
		sub.Status = domain.SubmissionStatusFailed
		sub.LastError = err.Error()
		s.save(ctx, sub)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	sub.Status = domain.SubmissionStatusSent
	s.save(ctx, sub)

	if s.mailCfg.SendConfirmation {
		s.sendConfirmation(ctx, data, attachments)
	}
	s.notify(ctx, sub, doc)

	logger.WithLead(s.logger, sub.Email).Info("Contact request delivered",
		zap.Bool("has_quote", sub.HasQuote()),
	)
	return result, nil
}

func (s *ContactService) attachQuote(sub *domain.Submission, q domain.QuoteData) {
	sub.ProjectType = q.ProjectType
	total := q.Pricing.Total
	sub.QuoteTotal = &total
	if raw, err := json.Marshal(q); err == nil {
		sub.QuoteJSON = string(raw)
	}
}

func (s *ContactService) emailData(req *domain.ContactRequest, sub *domain.Submission, doc *GeneratedDocument) mail.ContactEmail {
	data := mail.ContactEmail{
		Name:     sub.Name,
		Email:    sub.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Budget:   req.Budget,
		Message:  req.Message,
		SiteName: s.siteName,
	}
	if doc == nil {
		return data
	}

	q := doc.Quote
	summary := &mail.QuoteSummary{
		Number:      doc.Number,
		ProjectType: s.projectName(q.ProjectType),
		TotalHT:     quote.FormatEUR(q.Pricing.Subtotal),
		TotalTTC:    quote.FormatEUR(q.Pricing.Total),
		Duration:    q.Estimation.Duration,
		Filename:    doc.Filename,
	}
	if q.Pricing.Monthly > 0 {
		summary.Monthly = quote.FormatEUR(q.Pricing.Monthly)
	}
	data.Quote = summary
	return data
}

func (s *ContactService) projectName(id string) string {
	if pt, ok := s.catalog.ProjectType(id); ok {
		return pt.Name
	}
	return id
}

func (s *ContactService) sendConfirmation(ctx context.Context, data mail.ContactEmail, attachments []mail.Attachment) {
	msg, err := mail.ConfirmationMessage(s.mailCfg.To, data, attachments)
	if err == nil {
		_, err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		logger.WithLead(s.logger, data.Email).Warn("Failed to send confirmation email", zap.Error(err))
	}
}

func (s *ContactService) notify(ctx context.Context, sub *domain.Submission, doc *GeneratedDocument) {
	if s.notifier == nil {
		return
	}
	lead := notify.Lead{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Company: sub.Company,
		Budget:  sub.Budget,
		Message: sub.Message,
	}
	if doc != nil {
		lead.ProjectType = s.projectName(doc.Quote.ProjectType)
		lead.QuoteTotal = quote.FormatEUR(doc.Quote.Pricing.Total) + " TTC"
		lead.DocumentName = doc.Filename
		lead.Document = doc.Content
	}
	if err := s.notifier.NotifyLead(ctx, lead); err != nil {
		s.logger.Warn("Failed to notify owner", zap.Error(err))
	}
}

func (s *ContactService) archiveDocument(ctx context.Context, sub *domain.Submission, doc *GeneratedDocument) {
	if s.archive == nil || !s.archiveDocs {
		return
	}
	key, size, err := s.archive.Upload(ctx, doc.Filename, doc.ContentType, bytes.NewReader(doc.Content))
	if err != nil {
		s.logger.Warn("Failed to archive quote document", zap.String("filename", doc.Filename), zap.Error(err))
		return
	}
	sub.DocumentKey = key
	s.save(ctx, sub)
	s.logger.Debug("Quote document archived", zap.String("key", key), zap.Int64("size", size))
}

func (s *ContactService) record(ctx context.Context, sub *domain.Submission) {
	if s.submissions == nil {
		return
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		logger.WithLead(s.logger, sub.Email).Warn("Failed to record submission", zap.Error(err))
		sub.ID = uuid.Nil
	}
}

func (s *ContactService) save(ctx context.Context, sub *domain.Submission) {
	if s.submissions == nil || sub.ID == uuid.Nil {
		return
	}
	if err := s.submissions.Update(ctx, sub); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Failed to update submission", zap.String("submission_id", sub.ID.String()), zap.Error(err))
	}
}

func (s *ContactService) submissionID(sub *domain.Submission) *uuid.UUID {
	if s.submissions == nil || sub.ID == uuid.Nil {
		return nil
	}
	id := sub.ID
	return &id
}
