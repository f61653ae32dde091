// Package mail delivers contact-form emails through Resend.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key was provided
var ErrNotConfigured = errors.New("email provider not configured")

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Message struct {
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// ResendMailer sends messages with the Resend API
type ResendMailer struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewResendMailer(apiKey, from string, logger *zap.Logger) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger,
	}, nil
}

// Send delivers msg and returns the provider message id
func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Content:     a.Content,
			Filename:    a.Filename,
			ContentType: a.ContentType,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Email sent",
		zap.String("message_id", sent.Id),
		zap.Strings("to", msg.To),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return sent.Id, nil
}
