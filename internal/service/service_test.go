package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/mail"
	"github.com/webfolio/portfolio-api/internal/notify"
	"github.com/webfolio/portfolio-api/internal/repository"
)

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

// scenarioQuote is the vitrine + option-x quote priced 2300 HT / 2760 TTC
func scenarioQuote(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"projectType": "vitrine",
		"selections": map[string]interface{}{
			"design": []string{"option-x"},
		},
		"pricing":    map[string]interface{}{"subtotal": 2300, "tax": 460, "total": 2760},
		"estimation": map[string]interface{}{"duration": 6, "complexity": 26},
	})
	require.NoError(t, err)
	return raw
}

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

type fakeNotifier struct {
	leads []notify.Lead
	err   error
}

func (n *fakeNotifier) NotifyLead(ctx context.Context, lead notify.Lead) error {
	n.leads = append(n.leads, lead)
	return n.err
}

// fakeSubmissionStore keeps submissions in a map and implements both the
// write side used by the contact flow and the admin read side
type fakeSubmissionStore struct {
	items     map[uuid.UUID]domain.Submission
	createErr error
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{items: make(map[uuid.UUID]domain.Submission)}
}

func (f *fakeSubmissionStore) Create(ctx context.Context, s *domain.Submission) error {
	if f.createErr != nil {
		return f.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.items[s.ID] = *s
	return nil
}

func (f *fakeSubmissionStore) Update(ctx context.Context, s *domain.Submission) error {
	f.items[s.ID] = *s
	return nil
}

func (f *fakeSubmissionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSubmissionStore) List(ctx context.Context, page, pageSize int, filters *repository.SubmissionFilters) ([]domain.Submission, int64, error) {
	var out []domain.Submission
	for _, s := range f.items {
		if filters != nil && filters.Status != "" && s.Status != filters.Status {
			continue
		}
		out = append(out, s)
	}
	total := int64(len(out))
	start := (page - 1) * pageSize
	if start > len(out) {
		start = len(out)
	}
	end := start + pageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeSubmissionStore) CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	counts := map[domain.SubmissionStatus]int64{}
	for _, s := range f.items {
		counts[s.Status]++
	}
	return counts, nil
}

var errProviderDown = errors.New("provider down")
