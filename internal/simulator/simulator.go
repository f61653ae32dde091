// Package simulator implements the pricing simulator: a selection state over
// the catalog, the dependency rules between options and the derived price,
// duration and complexity figures.
package simulator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/domain"
)

var (
	// ErrUnknownOption is returned when an id is not in the catalog
	ErrUnknownOption = errors.New("unknown catalog option")

	// ErrInvalidLevel is returned for a section tier other than basic, advanced or premium
	ErrInvalidLevel = errors.New("invalid section level")
)

// State is the selection of one simulator session. The last three fields are
// derived and are overwritten after every action.
type State struct {
	ProjectType        string                    `json:"projectType"`
	DesignOptions      []string                  `json:"designOptions"`
	Sections           []domain.SectionSelection `json:"sections"`
	TechnicalFeatures  []string                  `json:"technicalFeatures"`
	MaintenanceOptions []string                  `json:"maintenanceOptions"`
	PerformanceOptions []string                  `json:"performanceOptions"`
	ContentOptions     map[string]int            `json:"contentOptions"`

	TotalPrice        int `json:"totalPrice"`
	EstimatedDuration int `json:"estimatedDuration"`
	Complexity        int `json:"complexity"`
}

func emptyState() State {
	return State{
		DesignOptions:      []string{},
		Sections:           []domain.SectionSelection{},
		TechnicalFeatures:  []string{},
		MaintenanceOptions: []string{},
		PerformanceOptions: []string{},
		ContentOptions:     map[string]int{},
	}
}

// Clone returns a deep copy of s
func (s State) Clone() State {
	out := s
	out.DesignOptions = append([]string{}, s.DesignOptions...)
	out.Sections = append([]domain.SectionSelection{}, s.Sections...)
	out.TechnicalFeatures = append([]string{}, s.TechnicalFeatures...)
	out.MaintenanceOptions = append([]string{}, s.MaintenanceOptions...)
	out.PerformanceOptions = append([]string{}, s.PerformanceOptions...)
	out.ContentOptions = make(map[string]int, len(s.ContentOptions))
	for id, qty := range s.ContentOptions {
		out.ContentOptions[id] = qty
	}
	return out
}

// Simulator owns one selection state and exposes the actions that mutate it.
// It is not safe for concurrent use.
type Simulator struct {
	catalog *catalog.Catalog
	state   State
}

// New returns a simulator with an empty selection
func New(c *catalog.Catalog) *Simulator {
	return &Simulator{catalog: c, state: emptyState()}
}

// Restore rebuilds a simulator from a stored state. Every id must be known to
// the catalog. Sets are kept as stored, so an option whose prerequisite was
// deselected stays without it; duplicates are dropped and the derived fields
// are recomputed.
func Restore(c *catalog.Catalog, st State) (*Simulator, error) {
	return rebuild(c, st, false)
}

// Resolve is Restore for selections that never went through the toggle
// actions: the prerequisites of every design option and technical feature
// are added.
func Resolve(c *catalog.Catalog, st State) (*Simulator, error) {
	return rebuild(c, st, true)
}

// FromSelections builds a simulator from the selections of a quote snapshot,
// taken as they are
func FromSelections(c *catalog.Catalog, projectType string, sel domain.QuoteSelections) (*Simulator, error) {
	return Restore(c, selectionState(projectType, sel))
}

// ResolveSelections builds a simulator from loose selections, closing
// prerequisites
func ResolveSelections(c *catalog.Catalog, projectType string, sel domain.QuoteSelections) (*Simulator, error) {
	return Resolve(c, selectionState(projectType, sel))
}

func selectionState(projectType string, sel domain.QuoteSelections) State {
	return State{
		ProjectType:        projectType,
		DesignOptions:      sel.Design,
		Sections:           sel.Sections,
		TechnicalFeatures:  sel.Technical,
		MaintenanceOptions: sel.Maintenance,
		PerformanceOptions: sel.Performance,
		ContentOptions:     sel.Content,
	}
}

func rebuild(c *catalog.Catalog, st State, withPrerequisites bool) (*Simulator, error) {
	sim := New(c)
	if err := sim.SetProjectType(st.ProjectType); err != nil {
		return nil, err
	}
	for _, id := range st.DesignOptions {
		if _, ok := c.DesignOption(id); !ok {
			return nil, fmt.Errorf("%w: design option %q", ErrUnknownOption, id)
		}
		sim.state.DesignOptions = add(sim.state.DesignOptions, id, c.DesignDependencies, withPrerequisites)
	}
	for _, sec := range st.Sections {
		if err := sim.SetSection(sec.SectionID, sec.Level); err != nil {
			return nil, err
		}
	}
	for _, id := range st.TechnicalFeatures {
		if _, ok := c.TechnicalFeature(id); !ok {
			return nil, fmt.Errorf("%w: technical feature %q", ErrUnknownOption, id)
		}
		sim.state.TechnicalFeatures = add(sim.state.TechnicalFeatures, id, c.TechnicalDependencies, withPrerequisites)
	}
	for _, id := range st.MaintenanceOptions {
		if _, ok := c.MaintenanceOption(id); !ok {
			return nil, fmt.Errorf("%w: maintenance option %q", ErrUnknownOption, id)
		}
		sim.state.MaintenanceOptions = add(sim.state.MaintenanceOptions, id, nil, false)
	}
	for _, id := range st.PerformanceOptions {
		if _, ok := c.PerformanceOption(id); !ok {
			return nil, fmt.Errorf("%w: performance option %q", ErrUnknownOption, id)
		}
		sim.state.PerformanceOptions = add(sim.state.PerformanceOptions, id, nil, false)
	}
	for id, qty := range st.ContentOptions {
		if err := sim.SetContentQuantity(id, qty); err != nil {
			return nil, err
		}
	}
	sim.recalculate()
	return sim, nil
}

func add(selected []string, id string, deps DependencyFunc, withPrerequisites bool) []string {
	if withPrerequisites {
		return include(selected, id, deps)
	}
	if contains(selected, id) {
		return selected
	}
	return append(selected, id)
}

// State returns a copy of the current selection
func (s *Simulator) State() State {
	return s.state.Clone()
}

// Totals returns the derived fields of the current selection
func (s *Simulator) Totals() Totals {
	return Totals{
		TotalPrice:        s.state.TotalPrice,
		EstimatedDuration: s.state.EstimatedDuration,
		Complexity:        s.state.Complexity,
	}
}

// SetProjectType selects the active project type; an empty id clears it
func (s *Simulator) SetProjectType(id string) error {
	if id != "" {
		if _, ok := s.catalog.ProjectType(id); !ok {
			return fmt.Errorf("%w: project type %q", ErrUnknownOption, id)
		}
	}
	s.state.ProjectType = id
	s.recalculate()
	return nil
}

// ToggleDesignOption selects the option with its prerequisites, or removes it
// with the options that directly depend on it
func (s *Simulator) ToggleDesignOption(id string) error {
	if _, ok := s.catalog.DesignOption(id); !ok {
		return fmt.Errorf("%w: design option %q", ErrUnknownOption, id)
	}
	s.state.DesignOptions = toggle(s.state.DesignOptions, id, s.catalog.DesignDependencies)
	s.recalculate()
	return nil
}

// ToggleTechnicalFeature is ToggleDesignOption over technical features
func (s *Simulator) ToggleTechnicalFeature(id string) error {
	if _, ok := s.catalog.TechnicalFeature(id); !ok {
		return fmt.Errorf("%w: technical feature %q", ErrUnknownOption, id)
	}
	s.state.TechnicalFeatures = toggle(s.state.TechnicalFeatures, id, s.catalog.TechnicalDependencies)
	s.recalculate()
	return nil
}

func (s *Simulator) ToggleMaintenanceOption(id string) error {
	if _, ok := s.catalog.MaintenanceOption(id); !ok {
		return fmt.Errorf("%w: maintenance option %q", ErrUnknownOption, id)
	}
	s.state.MaintenanceOptions = flip(s.state.MaintenanceOptions, id)
	s.recalculate()
	return nil
}

func (s *Simulator) TogglePerformanceOption(id string) error {
	if _, ok := s.catalog.PerformanceOption(id); !ok {
		return fmt.Errorf("%w: performance option %q", ErrUnknownOption, id)
	}
	s.state.PerformanceOptions = flip(s.state.PerformanceOptions, id)
	s.recalculate()
	return nil
}

// SetSection adds the section at the given level, or changes the level of an
// already present section
func (s *Simulator) SetSection(id string, level catalog.Level) error {
	if _, ok := s.catalog.Section(id); !ok {
		return fmt.Errorf("%w: section %q", ErrUnknownOption, id)
	}
	if !level.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	sections := append([]domain.SectionSelection{}, s.state.Sections...)
	found := false
	for i := range sections {
		if sections[i].SectionID == id {
			sections[i].Level = level
			found = true
			break
		}
	}
	if !found {
		sections = append(sections, domain.SectionSelection{SectionID: id, Level: level})
	}
	s.state.Sections = sections
	s.recalculate()
	return nil
}

// RemoveSection drops the section from the selection; absent sections are ignored
func (s *Simulator) RemoveSection(id string) error {
	if _, ok := s.catalog.Section(id); !ok {
		return fmt.Errorf("%w: section %q", ErrUnknownOption, id)
	}
	sections := make([]domain.SectionSelection, 0, len(s.state.Sections))
	for _, sec := range s.state.Sections {
		if sec.SectionID != id {
			sections = append(sections, sec)
		}
	}
	s.state.Sections = sections
	s.recalculate()
	return nil
}

// SetContentQuantity stores qty for a content option; qty <= 0 removes it
func (s *Simulator) SetContentQuantity(id string, qty int) error {
	if _, ok := s.catalog.ContentOption(id); !ok {
		return fmt.Errorf("%w: content option %q", ErrUnknownOption, id)
	}
	content := make(map[string]int, len(s.state.ContentOptions)+1)
	for k, v := range s.state.ContentOptions {
		content[k] = v
	}
	if qty <= 0 {
		delete(content, id)
	} else {
		content[id] = qty
	}
	s.state.ContentOptions = content
	s.recalculate()
	return nil
}

// Reset empties the selection
func (s *Simulator) Reset() {
	s.state = emptyState()
	s.recalculate()
}

func (s *Simulator) recalculate() {
	totals := Calculate(s.catalog, &s.state)
	s.state.TotalPrice = totals.TotalPrice
	s.state.EstimatedDuration = totals.EstimatedDuration
	s.state.Complexity = totals.Complexity
}

// Snapshot freezes the current selection and its figures into a QuoteData.
// Selections are listed in catalog order.
func (s *Simulator) Snapshot(now time.Time) domain.QuoteData {
	c := s.catalog
	st := s.state.Clone()

	sections := st.Sections
	sort.SliceStable(sections, func(i, j int) bool {
		return c.Position("section", sections[i].SectionID) < c.Position("section", sections[j].SectionID)
	})

	subtotal := float64(st.TotalPrice)
	return domain.QuoteData{
		ProjectType: st.ProjectType,
		Selections: domain.QuoteSelections{
			Design:      inCatalogOrder(c, "design", st.DesignOptions),
			Sections:    sections,
			Technical:   inCatalogOrder(c, "technical", st.TechnicalFeatures),
			Maintenance: inCatalogOrder(c, "maintenance", st.MaintenanceOptions),
			Performance: inCatalogOrder(c, "performance", st.PerformanceOptions),
			Content:     st.ContentOptions,
		},
		Pricing: domain.QuotePricing{
			Subtotal: subtotal,
			Tax:      Tax(subtotal),
			Total:    TotalWithTax(subtotal),
			Monthly:  MonthlyMaintenance(c, st.MaintenanceOptions),
		},
		Estimation: domain.QuoteEstimation{
			Duration:   st.EstimatedDuration,
			Complexity: st.Complexity,
			Level:      ComplexityLevel(st.Complexity),
		},
		GeneratedAt: now.UTC(),
	}
}

func inCatalogOrder(c *catalog.Catalog, kind string, ids []string) []string {
	out := append([]string{}, ids...)
	sort.SliceStable(out, func(i, j int) bool {
		return c.Position(kind, out[i]) < c.Position(kind, out[j])
	})
	return out
}
