package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/database"
	"github.com/webfolio/portfolio-api/internal/http/handler"
	"github.com/webfolio/portfolio-api/internal/mail"
	"github.com/webfolio/portfolio-api/internal/repository"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/session"
	"github.com/webfolio/portfolio-api/internal/storage"
	"go.uber.org/zap"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, msg mail.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, msg)
	return "msg_1", nil
}

type fixture struct {
	mux    *chi.Mux
	mailer *fakeMailer
	repo   *repository.SubmissionRepository
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Catalog{
		ProjectTypes: []catalog.ProjectType{
			{ID: "vitrine", Name: "Site vitrine", BasePrice: 2000},
			{ID: "refonte", Name: "Refonte", BasePrice: 1500},
		},
		DesignOptions: []catalog.DesignOption{
			{ID: "option-x", Name: "Option X", Price: 300},
			{ID: "a", Name: "A", Price: 100},
			{ID: "b", Name: "B", Price: 100, Dependencies: []string{"a"}},
			{ID: "c", Name: "C", Price: 100, Dependencies: []string{"b"}},
		},
		Sections: []catalog.SectionOption{
			{ID: "home", Name: "Accueil", Basic: catalog.Tier{Price: 200}, Advanced: catalog.Tier{Price: 400}, Premium: catalog.Tier{Price: 700}},
		},
		TechnicalFeatures: []catalog.TechnicalFeature{
			{ID: "cms", Name: "CMS", Price: 800},
			{ID: "shop", Name: "Boutique", Price: 1500, RequiredFeatures: []string{"cms"}},
		},
		MaintenanceOptions: []catalog.MaintenanceOption{
			{ID: "hosting", Name: "Hébergement", SetupPrice: 100, MonthlyPrice: 25},
		},
		PerformanceOptions: []catalog.PerformanceOption{
			{ID: "seo", Name: "SEO", Price: 450},
		},
		ContentOptions: []catalog.ContentOption{
			{ID: "pages", Name: "Rédaction", UnitPrice: 120, Unit: "page"},
		},
	})
	require.NoError(t, err)
	return c
}

// newFixture wires the handlers over real services, a sqlite lead store and
// a local archive. mailEnabled switches the contact flow out of dev mode.
func newFixture(t *testing.T, mailEnabled bool) *fixture {
	t.Helper()
	log := zap.NewNop()
	c := testCatalog(t)

	cfg := &config.Config{
		App:     config.AppConfig{Name: "Portfolio API"},
		Mail:    config.MailConfig{From: "Studio <hello@example.com>", To: "owner@example.com"},
		Storage: config.StorageConfig{ArchiveQuotes: true},
		Quote:   config.QuoteConfig{ValidityDays: 30, IssuerName: "Studio Web"},
	}
	if mailEnabled {
		cfg.Mail.ResendAPIKey = "re_test"
	}

	db, err := database.NewDatabase(context.Background(), &config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "leads.db"),
	}, log)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	repo := repository.NewSubmissionRepository(db)

	archive, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	f := &fixture{mailer: &fakeMailer{}, repo: repo}

	quotes := service.NewQuoteService(c, &cfg.Quote, log)
	simulator := service.NewSimulatorService(c, session.NewMemoryStore(time.Hour), log)
	contact := service.NewContactService(c, quotes, f.mailer, nil, repo, archive, cfg, log)
	submissions := service.NewSubmissionService(repo, archive, log)

	sim := handler.NewSimulatorHandler(simulator, log)
	qh := handler.NewQuoteHandler(quotes, log)
	ch := handler.NewContactHandler(contact, log)
	ah := handler.NewAdminHandler(submissions, log)

	r := chi.NewRouter()
	r.Get("/api/catalog", sim.Catalog)
	r.Post("/api/simulator/estimate", sim.Estimate)
	r.Post("/api/simulator/sessions", sim.CreateSession)
	r.Route("/api/simulator/sessions/{id}", func(r chi.Router) {
		r.Get("/", sim.GetSession)
		r.Delete("/", sim.DeleteSession)
		r.Post("/reset", sim.ResetSession)
		r.Put("/project-type", sim.SetProjectType)
		r.Post("/{group}/{optionId}/toggle", sim.Toggle)
		r.Put("/sections/{sectionId}", sim.SetSection)
		r.Delete("/sections/{sectionId}", sim.RemoveSection)
		r.Put("/content/{optionId}", sim.SetContent)
		r.Get("/quote", sim.Quote)
	})
	r.Post("/api/contact", ch.Submit)
	r.Post("/api/generate-quote-pdf", qh.GeneratePDF)
	r.Post("/api/generate-quote-xlsx", qh.GenerateXLSX)
	r.Get("/api/admin/submissions", ah.ListSubmissions)
	r.Get("/api/admin/submissions/stats", ah.SubmissionStats)
	r.Get("/api/admin/submissions/{id}", ah.GetSubmission)
	r.Get("/api/admin/submissions/{id}/document", ah.DownloadDocument)
	f.mux = r
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

// scenarioQuote is the vitrine + option-x quote priced 2300 HT / 2760 TTC
func scenarioQuote() map[string]interface{} {
	return map[string]interface{}{
		"projectType": "vitrine",
		"selections": map[string]interface{}{
			"design": []string{"option-x"},
		},
		"pricing":    map[string]interface{}{"subtotal": 2300, "tax": 460, "total": 2760},
		"estimation": map[string]interface{}{"duration": 6, "complexity": 26},
	}
}

type errorBody struct {
	Error  string            `json:"error"`
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors"`
}
