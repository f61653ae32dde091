package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/session"
	"github.com/webfolio/portfolio-api/internal/simulator"
	"go.uber.org/zap"
)

func newSimulatorService(t *testing.T) (*service.SimulatorService, *session.MemoryStore) {
	store := session.NewMemoryStore(time.Hour)
	return service.NewSimulatorService(testCatalog(t), store, zap.NewNop()), store
}

func TestSimulatorService_SessionLifecycle(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.Zero(t, created.State.TotalPrice)
	assert.Empty(t, created.State.DesignOptions)

	s, err := svc.SetProjectType(ctx, created.ID, "vitrine")
	require.NoError(t, err)
	assert.Equal(t, 2000, s.State.TotalPrice)

	s, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "option-x")
	require.NoError(t, err)
	assert.Equal(t, 2300, s.State.TotalPrice)
	assert.Equal(t, 6, s.State.EstimatedDuration)
	assert.Equal(t, 26, s.State.Complexity)
	assert.Equal(t, 460.0, s.Tax)
	assert.Equal(t, 2760.0, s.TotalTTC)
	assert.Equal(t, simulator.ComplexitySimple, s.Level)

	q, err := svc.Quote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuotePricing{Subtotal: 2300, Tax: 460, Total: 2760}, q.Pricing)

	got, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, s.State, got.State)

	reset, err := svc.ResetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, reset.ID)
	assert.Zero(t, reset.State.TotalPrice)
	assert.Empty(t, reset.State.ProjectType)

	require.NoError(t, svc.DeleteSession(ctx, created.ID))
	_, err = svc.GetSession(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSimulatorService_DependencyRules(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	s, err := svc.Toggle(ctx, created.ID, service.GroupDesign, "c")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.State.DesignOptions)

	s, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, s.State.DesignOptions, "only direct dependents are removed")

	s, err = svc.Toggle(ctx, created.ID, service.GroupTechnical, "shop")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cms", "shop"}, s.State.TechnicalFeatures)

	s, err = svc.Toggle(ctx, created.ID, service.GroupTechnical, "cms")
	require.NoError(t, err)
	assert.Empty(t, s.State.TechnicalFeatures)
}

func TestSimulatorService_CascadeSurvivesReload(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "c")
	require.NoError(t, err)
	s, err := svc.Toggle(ctx, created.ID, service.GroupDesign, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, s.State.DesignOptions)

	q, err := svc.Quote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, q.Selections.Design)
	assert.Equal(t, 100.0, q.Pricing.Subtotal)

	s, err = svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, s.State.DesignOptions)

	s, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, s.State.DesignOptions, "a can be selected again")

	s, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "b")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.State.DesignOptions)
}

func TestSimulatorService_SectionsContentAndMaintenance(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	id := created.ID

	s, err := svc.SetSection(ctx, id, "home", catalog.LevelAdvanced)
	require.NoError(t, err)
	assert.Equal(t, 400, s.State.TotalPrice)

	s, err = svc.SetSection(ctx, id, "home", catalog.LevelPremium)
	require.NoError(t, err)
	require.Len(t, s.State.Sections, 1)
	assert.Equal(t, 700, s.State.TotalPrice)

	s, err = svc.RemoveSection(ctx, id, "home")
	require.NoError(t, err)
	assert.Empty(t, s.State.Sections)

	s, err = svc.SetContent(ctx, id, "pages", 3)
	require.NoError(t, err)
	assert.Equal(t, 360, s.State.TotalPrice)

	s, err = svc.SetContent(ctx, id, "pages", 0)
	require.NoError(t, err)
	assert.Empty(t, s.State.ContentOptions)

	s, err = svc.Toggle(ctx, id, service.GroupMaintenance, "hosting")
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Monthly)

	s, err = svc.Toggle(ctx, id, service.GroupPerformance, "seo")
	require.NoError(t, err)
	assert.Equal(t, 550, s.State.TotalPrice)
}

func TestSimulatorService_Errors(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "nope")
	assert.ErrorIs(t, err, service.ErrUnknownOption)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Toggle(ctx, created.ID, "colors", "a")
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.SetProjectType(ctx, created.ID, "spaceship")
	assert.ErrorIs(t, err, service.ErrUnknownOption)

	_, err = svc.SetSection(ctx, created.ID, "home", catalog.Level("gold"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.SetContent(ctx, created.ID, "pages", 51)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	got, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, got.State.TotalPrice, "failed actions leave the session untouched")
}

func TestSimulatorService_StaleSessionIsReset(t *testing.T) {
	svc, store := newSimulatorService(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.Save(ctx, &session.Session{
		ID:    id,
		State: simulator.State{ProjectType: "removed-from-catalog"},
	}))

	s, err := svc.Toggle(ctx, id, service.GroupDesign, "option-x")
	require.NoError(t, err)
	assert.Equal(t, []string{"option-x"}, s.State.DesignOptions)
	assert.Empty(t, s.State.ProjectType)
}

func TestSimulatorService_Estimate(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	res, err := svc.Estimate(ctx, &domain.EstimateRequest{
		ProjectType: "refonte",
		Selections: domain.QuoteSelections{
			Design: []string{"c"},
		},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, res.State.DesignOptions)
	assert.Equal(t, []string{"a", "b", "c"}, res.Quote.Selections.Design, "snapshot lists options in catalog order")
	assert.Equal(t, 225, res.State.TotalPrice, "redesign pays 75% of the options")

	_, err = svc.Estimate(ctx, &domain.EstimateRequest{ProjectType: "vitrine", Selections: domain.QuoteSelections{Design: []string{"nope"}}})
	assert.ErrorIs(t, err, service.ErrUnknownOption)

	_, err = svc.Estimate(ctx, &domain.EstimateRequest{Selections: domain.QuoteSelections{Content: map[string]int{"pages": 51}}})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

// racingStore lets another writer commit between each read and save of the
// wrapped store
type racingStore struct {
	*session.MemoryStore
	races int
}

func (r *racingStore) Save(ctx context.Context, s *session.Session) error {
	if r.races > 0 && s.Version > 0 {
		r.races--
		other, err := r.MemoryStore.Get(ctx, s.ID)
		if err != nil {
			return err
		}
		other.State.ContentOptions["pages"] = other.State.ContentOptions["pages"] + 1
		if err := r.MemoryStore.Save(ctx, other); err != nil {
			return err
		}
	}
	return r.MemoryStore.Save(ctx, s)
}

func TestSimulatorService_ConcurrentWriteIsRetried(t *testing.T) {
	store := &racingStore{MemoryStore: session.NewMemoryStore(time.Hour)}
	svc := service.NewSimulatorService(testCatalog(t), store, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	store.races = 2
	s, err := svc.Toggle(ctx, created.ID, service.GroupDesign, "option-x")
	require.NoError(t, err)
	assert.Equal(t, []string{"option-x"}, s.State.DesignOptions)
	assert.Equal(t, 2, s.State.ContentOptions["pages"], "the concurrent writes are kept")

	store.races = 100
	_, err = svc.Toggle(ctx, created.ID, service.GroupDesign, "a")
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestSimulatorService_ParallelActionsAreAllKept(t *testing.T) {
	svc, _ := newSimulatorService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	actions := []struct{ group, id string }{
		{service.GroupDesign, "option-x"},
		{service.GroupDesign, "a"},
		{service.GroupTechnical, "cms"},
		{service.GroupMaintenance, "hosting"},
		{service.GroupPerformance, "seo"},
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(actions))
	for _, a := range actions {
		wg.Add(1)
		go func(group, id string) {
			defer wg.Done()
			_, err := svc.Toggle(ctx, created.ID, group, id)
			errs <- err
		}(a.group, a.id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	s, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"option-x", "a"}, s.State.DesignOptions)
	assert.Equal(t, []string{"cms"}, s.State.TechnicalFeatures)
	assert.Equal(t, []string{"hosting"}, s.State.MaintenanceOptions)
	assert.Equal(t, []string{"seo"}, s.State.PerformanceOptions)
	assert.Equal(t, 300+100+800+100+450, s.State.TotalPrice)
}
