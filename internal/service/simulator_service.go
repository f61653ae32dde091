package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/logger"
	"github.com/webfolio/portfolio-api/internal/mapper"
	"github.com/webfolio/portfolio-api/internal/quote"
	"github.com/webfolio/portfolio-api/internal/session"
	"github.com/webfolio/portfolio-api/internal/simulator"
	"go.uber.org/zap"
)

const (
	mutateRetries    = 4
	mutateRetryDelay = 5 * time.Millisecond
)

// Option groups that are changed with a toggle
const (
	GroupDesign      = "design"
	GroupTechnical   = "technical"
	GroupMaintenance = "maintenance"
	GroupPerformance = "performance"
)

// SimulatorService runs the pricing simulator, either statelessly or on
// server-side sessions
type SimulatorService struct {
	catalog *catalog.Catalog
	store   session.Store
	logger  *zap.Logger
	now     func() time.Time
}

func NewSimulatorService(c *catalog.Catalog, store session.Store, logger *zap.Logger) *SimulatorService {
	return &SimulatorService{
		catalog: c,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// Catalog returns the loaded option tables
func (s *SimulatorService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Estimate prices a selection without storing it. Prerequisites missing from
// the selection are added.
func (s *SimulatorService) Estimate(ctx context.Context, req *domain.EstimateRequest) (*domain.EstimateResponse, error) {
	sel := req.Selections
	count := len(sel.Design) + len(sel.Sections) + len(sel.Technical) +
		len(sel.Maintenance) + len(sel.Performance) + len(sel.Content)
	if count > quote.MaxSelections {
		return nil, fmt.Errorf("%w: too many selections (%d > %d)", ErrInvalidInput, count, quote.MaxSelections)
	}
	for id, qty := range sel.Content {
		if qty > quote.MaxContentQuantity {
			return nil, fmt.Errorf("%w: quantity of %q exceeds %d", ErrInvalidInput, id, quote.MaxContentQuantity)
		}
	}

	sim, err := simulator.ResolveSelections(s.catalog, req.ProjectType, sel)
	if err != nil {
		return nil, mapSimulatorError(err)
	}
	return &domain.EstimateResponse{
		State: mapper.ToSimulatorStateDTO(sim.State()),
		Quote: sim.Snapshot(s.now()),
	}, nil
}

// CreateSession starts an empty session
func (s *SimulatorService) CreateSession(ctx context.Context) (*domain.SessionDTO, error) {
	sess := &session.Session{
		ID:    uuid.New(),
		State: simulator.New(s.catalog).State(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	logger.WithSession(s.logger, sess.ID).Debug("Simulator session created")
	return s.toDTO(sess), nil
}

func (s *SimulatorService) GetSession(ctx context.Context, id uuid.UUID) (*domain.SessionDTO, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(sess), nil
}

// ResetSession clears the selection and keeps the session id
func (s *SimulatorService) ResetSession(ctx context.Context, id uuid.UUID) (*domain.SessionDTO, error) {
	return s.mutate(ctx, id, func(sim *simulator.Simulator) error {
		sim.Reset()
		return nil
	})
}

// DeleteSession forgets the session
func (s *SimulatorService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *SimulatorService) SetProjectType(ctx context.Context, id uuid.UUID, projectType string) (*domain.SessionDTO, error) {
	return s.mutate(ctx, id, func(sim *simulator.Simulator) error {
		return sim.SetProjectType(projectType)
	})
}

// Toggle flips one option of a group. Design options and technical features
// follow the dependency rules.
func (s *SimulatorService) Toggle(ctx context.Context, id uuid.UUID, group, optionID string) (*domain.SessionDTO, error) {
	var action func(*simulator.Simulator, string) error
	switch group {
	case GroupDesign:
		action = (*simulator.Simulator).ToggleDesignOption
	case GroupTechnical:
		action = (*simulator.Simulator).ToggleTechnicalFeature
	case GroupMaintenance:
		action = (*simulator.Simulator).ToggleMaintenanceOption
	case GroupPerformance:
		action = (*simulator.Simulator).TogglePerformanceOption
	default:
		return nil, fmt.Errorf("%w: unknown option group %q", ErrInvalidInput, group)
	}
	return s.mutate(ctx, id, func(sim *simulator.Simulator) error {
		return action(sim, optionID)
	})
}

func (s *SimulatorService) SetSection(ctx context.Context, id uuid.UUID, sectionID string, level catalog.Level) (*domain.SessionDTO, error) {
	return s.mutate(ctx, id, func(sim *simulator.Simulator) error {
		return sim.SetSection(sectionID, level)
	})
}

func (s *SimulatorService) RemoveSection(ctx context.Context, id uuid.UUID, sectionID string) (*domain.SessionDTO, error) {
	return s.mutate(ctx, id, func(sim *simulator.Simulator) error {
		return sim.RemoveSection(sectionID)
	})
}

// SetContent stores a content quantity; zero or less removes the option
func (s *SimulatorService) SetContent(ctx context.Context, id uuid.UUID, optionID string, qty int) (*domain.SessionDTO, error) {
	if qty > quote.MaxContentQuantity {
		return nil, fmt.Errorf("%w: quantity exceeds %d", ErrInvalidInput, quote.MaxContentQuantity)
	}
	return s.mutate(ctx, id, func(sim *simulator.Simulator) error {
		return sim.SetContentQuantity(optionID, qty)
	})
}

// Quote snapshots the session selection
func (s *SimulatorService) Quote(ctx context.Context, id uuid.UUID) (*domain.QuoteData, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	sim, err := s.restore(sess)
	if err != nil {
		return nil, err
	}
	q := sim.Snapshot(s.now())
	return &q, nil
}

// mutate applies fn to the stored session. A save that loses against a
// concurrent request on the same session is retried on fresh state.
func (s *SimulatorService) mutate(ctx context.Context, id uuid.UUID, fn func(*simulator.Simulator) error) (*domain.SessionDTO, error) {
	var sess *session.Session
	attempt := func() error {
		var err error
		sess, err = s.load(ctx, id)
		if err != nil {
			return backoff.Permanent(err)
		}
		sim, err := s.restore(sess)
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := fn(sim); err != nil {
			return backoff.Permanent(mapSimulatorError(err))
		}

		sess.State = sim.State()
		err = s.store.Save(ctx, sess)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, session.ErrVersionConflict):
			logger.WithSession(s.logger, id).Debug("Session changed concurrently, retrying")
			return err
		case errors.Is(err, session.ErrSessionNotFound):
			return backoff.Permanent(fmt.Errorf("%w: %v", ErrNotFound, err))
		default:
			return backoff.Permanent(fmt.Errorf("failed to save session: %w", err))
		}
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(mutateRetryDelay), mutateRetries)
	if err := backoff.Retry(attempt, backoff.WithContext(policy, ctx)); err != nil {
		if errors.Is(err, session.ErrVersionConflict) {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, err
	}
	return s.toDTO(sess), nil
}

func (s *SimulatorService) load(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// restore rebuilds the simulator of a stored session. A state that no longer
// matches the catalog is replaced by an empty selection.
func (s *SimulatorService) restore(sess *session.Session) (*simulator.Simulator, error) {
	sim, err := simulator.Restore(s.catalog, sess.State)
	if err != nil {
		logger.WithSession(s.logger, sess.ID).Warn("Stored session no longer matches the catalog, resetting",
			zap.Error(err),
		)
		return simulator.New(s.catalog), nil
	}
	return sim, nil
}

func (s *SimulatorService) toDTO(sess *session.Session) *domain.SessionDTO {
	st := sess.State
	subtotal := float64(st.TotalPrice)
	return &domain.SessionDTO{
		ID:        sess.ID,
		State:     mapper.ToSimulatorStateDTO(st),
		Tax:       simulator.Tax(subtotal),
		TotalTTC:  simulator.TotalWithTax(subtotal),
		Monthly:   simulator.MonthlyMaintenance(s.catalog, st.MaintenanceOptions),
		Level:     simulator.ComplexityLevel(st.Complexity),
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func mapSimulatorError(err error) error {
	switch {
	case errors.Is(err, simulator.ErrUnknownOption):
		return fmt.Errorf("%w: %v", ErrUnknownOption, err)
	case errors.Is(err, simulator.ErrInvalidLevel):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return err
}
