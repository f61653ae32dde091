// Package notify pushes new-lead alerts to the site owner on Telegram.
package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Lead is what the owner sees about a new contact submission
type Lead struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	Budget       string
	Message      string
	ProjectType  string
	QuoteTotal   string
	DocumentName string
	Document     []byte
}

// TelegramNotifier sends lead alerts to one chat
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier authenticates the bot token against the Bot API
func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return newTelegramNotifier(bot, chatID, logger), nil
}

func newTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64, logger *zap.Logger) *TelegramNotifier {
	logger.Info("Telegram notifications enabled",
		zap.String("bot", bot.Self.UserName),
		zap.Int64("chat_id", chatID),
	)
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}
}

// NotifyLead posts a summary of the lead and, when present, its quote document
func (n *TelegramNotifier) NotifyLead(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, FormatLead(lead))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	if len(lead.Document) > 0 {
		doc := tgbotapi.NewDocument(n.chatID, tgbotapi.FileBytes{Name: lead.DocumentName, Bytes: lead.Document})
		if _, err := n.bot.Send(doc); err != nil {
			return fmt.Errorf("failed to send telegram document: %w", err)
		}
	}
	return nil
}

const maxMessagePreview = 500

// FormatLead renders the lead as Telegram HTML
func FormatLead(lead Lead) string {
	var b strings.Builder
	b.WriteString("📩 <b>Nouveau contact</b>\n")
	fmt.Fprintf(&b, "<b>%s</b> &lt;%s&gt;\n", html.EscapeString(lead.Name), html.EscapeString(lead.Email))

	for _, f := range []struct{ label, value string }{
		{"Téléphone", lead.Phone},
		{"Entreprise", lead.Company},
		{"Budget", lead.Budget},
		{"Projet", lead.ProjectType},
		{"Devis", lead.QuoteTotal},
	} {
		if f.value != "" {
			fmt.Fprintf(&b, "%s : %s\n", f.label, html.EscapeString(f.value))
		}
	}

	message := []rune(lead.Message)
	if len(message) > maxMessagePreview {
		message = append(message[:maxMessagePreview], '…')
	}
	b.WriteString("\n")
	b.WriteString(html.EscapeString(string(message)))
	return b.String()
}
