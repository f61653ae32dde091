package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/storage"
	"go.uber.org/zap"
)

type contactFixture struct {
	svc      *service.ContactService
	mailer   *fakeMailer
	notifier *fakeNotifier
	store    *fakeSubmissionStore
	archive  *storage.LocalStorage
}

func newContactFixture(t *testing.T, mailEnabled bool, withMailer bool) *contactFixture {
	t.Helper()
	c := testCatalog(t)
	cfg := &config.Config{
		App: config.AppConfig{Name: "Portfolio API"},
		Mail: config.MailConfig{
			From:             "Studio <hello@example.com>",
			To:               "owner@example.com",
			SubjectPrefix:    "[Portfolio]",
			SendConfirmation: true,
		},
		Storage: config.StorageConfig{ArchiveQuotes: true},
		Quote:   config.QuoteConfig{ValidityDays: 30, IssuerName: "Studio Web"},
	}
	if mailEnabled {
		cfg.Mail.ResendAPIKey = "re_test"
	}

	archive, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	f := &contactFixture{
		mailer:   &fakeMailer{},
		notifier: &fakeNotifier{},
		store:    newFakeSubmissionStore(),
		archive:  archive,
	}
	var mailer service.Mailer
	if withMailer {
		mailer = f.mailer
	}
	quotes := service.NewQuoteService(c, &cfg.Quote, zap.NewNop())
	f.svc = service.NewContactService(c, quotes, mailer, f.notifier, f.store, archive, cfg, zap.NewNop())
	return f
}

func contactRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Company: "Acme",
		Message: "Bonjour, je voudrais un site.",
	}
}

func TestContactService_DevModeWithoutProvider(t *testing.T) {
	f := newContactFixture(t, false, true)

	res, err := f.svc.Submit(context.Background(), contactRequest(), "203.0.113.7")
	require.NoError(t, err)

	assert.True(t, res.DevMode)
	require.NotNil(t, res.SubmissionID)
	assert.Empty(t, f.mailer.sent, "nothing is sent without an API key")

	stored := f.store.items[*res.SubmissionID]
	assert.Equal(t, domain.SubmissionStatusDevMode, stored.Status)
	assert.Equal(t, "203.0.113.7", stored.IPAddress)
	assert.False(t, stored.HasQuote())
	require.Len(t, f.notifier.leads, 1)
	assert.Equal(t, "Jean Dupont", f.notifier.leads[0].Name)
}

func TestContactService_NilMailerIsDevMode(t *testing.T) {
	f := newContactFixture(t, true, false)

	res, err := f.svc.Submit(context.Background(), contactRequest(), "")
	require.NoError(t, err)
	assert.True(t, res.DevMode)
}

func TestContactService_SendsWithQuote(t *testing.T) {
	f := newContactFixture(t, true, true)
	req := contactRequest()
	req.QuoteData = scenarioQuote(t)

	res, err := f.svc.Submit(context.Background(), req, "")
	require.NoError(t, err)
	assert.False(t, res.DevMode)

	require.Len(t, f.mailer.sent, 2, "owner email and confirmation")
	owner := f.mailer.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, owner.To)
	assert.Equal(t, "jean@example.com", owner.ReplyTo)
	assert.Contains(t, owner.Subject, "2 760,00 €")
	require.Len(t, owner.Attachments, 1)
	assert.Equal(t, "application/pdf", owner.Attachments[0].ContentType)
	assert.Regexp(t, `^devis_Jean_Dupont_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}_[a-z0-9]{6}\.pdf$`, owner.Attachments[0].Filename)
	assert.Equal(t, "%PDF-", string(owner.Attachments[0].Content[:5]))

	confirmation := f.mailer.sent[1]
	assert.Equal(t, []string{"jean@example.com"}, confirmation.To)

	stored := f.store.items[*res.SubmissionID]
	assert.Equal(t, domain.SubmissionStatusSent, stored.Status)
	assert.Equal(t, "vitrine", stored.ProjectType)
	require.NotNil(t, stored.QuoteTotal)
	assert.Equal(t, 2760.0, *stored.QuoteTotal)
	require.NotEmpty(t, stored.DocumentKey)

	body, err := f.archive.Download(context.Background(), stored.DocumentKey)
	require.NoError(t, err)
	defer body.Close()
	archived, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, owner.Attachments[0].Content, archived)

	require.Len(t, f.notifier.leads, 1)
	assert.Equal(t, "2 760,00 € TTC", f.notifier.leads[0].QuoteTotal)
	assert.Equal(t, "Site vitrine", f.notifier.leads[0].ProjectType)
	assert.NotEmpty(t, f.notifier.leads[0].Document)
}

func TestContactService_InvalidQuote(t *testing.T) {
	f := newContactFixture(t, true, true)
	req := contactRequest()
	req.QuoteData = []byte(`{"projectType":"spaceship","pricing":{"subtotal":1,"tax":0,"total":1}}`)

	_, err := f.svc.Submit(context.Background(), req, "")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.store.items, "rejected requests are not recorded")
	assert.Empty(t, f.notifier.leads)
}

func TestContactService_NullQuoteIsIgnored(t *testing.T) {
	f := newContactFixture(t, true, true)
	req := contactRequest()
	req.QuoteData = []byte(`null`)

	_, err := f.svc.Submit(context.Background(), req, "")
	require.NoError(t, err)
	require.NotEmpty(t, f.mailer.sent)
	assert.Empty(t, f.mailer.sent[0].Attachments)
}

func TestContactService_DeliveryFailure(t *testing.T) {
	f := newContactFixture(t, true, true)
	f.mailer.err = errProviderDown

	_, err := f.svc.Submit(context.Background(), contactRequest(), "")
	require.ErrorIs(t, err, service.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "provider down")

	require.Len(t, f.store.items, 1)
	for _, stored := range f.store.items {
		assert.Equal(t, domain.SubmissionStatusFailed, stored.Status)
		assert.Equal(t, "provider down", stored.LastError)
	}
	assert.Empty(t, f.notifier.leads, "failed deliveries are not announced")
}

func TestContactService_StoreFailureDoesNotFailRequest(t *testing.T) {
	f := newContactFixture(t, true, true)
	f.store.createErr = errProviderDown
	f.notifier.err = errProviderDown

	res, err := f.svc.Submit(context.Background(), contactRequest(), "")
	require.NoError(t, err)
	assert.Nil(t, res.SubmissionID)
	assert.Len(t, f.mailer.sent, 2)
}
