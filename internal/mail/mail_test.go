package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOwnerMessage(t *testing.T) {
	data := ContactEmail{
		Name:    "Jean <b>Dupont</b>",
		Email:   "jean@example.com",
		Company: "Acme",
		Message: "Bonjour,\nun site vitrine ?",
		Quote: &QuoteSummary{
			Number:      "D-1",
			ProjectType: "Site vitrine",
			TotalHT:     "2 300,00 €",
			TotalTTC:    "2 760,00 €",
			Duration:    6,
		},
	}
	att := []Attachment{{Filename: "devis.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}}

	msg, err := OwnerMessage("owner@example.com", "[Portfolio]", data, att)
	require.NoError(t, err)

	assert.Equal(t, []string{"owner@example.com"}, msg.To)
	assert.Equal(t, "jean@example.com", msg.ReplyTo)
	assert.Equal(t, "[Portfolio] Nouveau contact : Jean <b>Dupont</b> (devis 2 760,00 € TTC)", msg.Subject)
	assert.Contains(t, msg.HTML, "Jean &lt;b&gt;Dupont&lt;/b&gt;", "html body is escaped")
	assert.NotContains(t, msg.HTML, "<b>Dupont</b>")
	assert.Contains(t, msg.HTML, "Entreprise")
	assert.NotContains(t, msg.HTML, "Téléphone", "empty optional fields are omitted")
	assert.Contains(t, msg.Text, "Devis joint D-1")
	assert.Len(t, msg.Attachments, 1)
}

func TestOwnerMessage_SubjectHasNoNewlines(t *testing.T) {
	msg, err := OwnerMessage("owner@example.com", "", ContactEmail{Name: "a\r\nBcc: x@example.com", Email: "a@example.com"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, msg.Subject, "\n")
	assert.NotContains(t, msg.Subject, "\r")
}

func TestConfirmationMessage(t *testing.T) {
	msg, err := ConfirmationMessage("owner@example.com", ContactEmail{
		Name:     "Élodie",
		Email:    "elodie@example.com",
		SiteName: "Studio Web",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"elodie@example.com"}, msg.To)
	assert.Equal(t, "owner@example.com", msg.ReplyTo)
	assert.Contains(t, msg.HTML, "Bonjour Élodie")
	assert.Contains(t, msg.Subject, "Studio Web")
}

func TestNewResendMailer_RequiresKey(t *testing.T) {
	_, err := NewResendMailer("", "from@example.com", zap.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestResendMailer_Send(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	m, err := NewResendMailer("re_test", "Studio <hello@example.com>", zap.NewNop())
	require.NoError(t, err)
	m.client.BaseURL, err = url.Parse(srv.URL + "/")
	require.NoError(t, err)

	id, err := m.Send(context.Background(), Message{
		To:          []string{"owner@example.com"},
		Subject:     "Hello",
		HTML:        "<p>Hi</p>",
		Attachments: []Attachment{{Filename: "devis.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	assert.Equal(t, "Studio <hello@example.com>", received["from"])
	assert.Equal(t, "Hello", received["subject"])
	require.Len(t, received["attachments"], 1)
}
