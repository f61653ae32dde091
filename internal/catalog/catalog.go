// Package catalog holds the static option tables the pricing simulator reads
// from: project types, design options, page sections, technical features,
// maintenance and performance add-ons, and content quantities.
package catalog

import (
	"fmt"
)

// RedesignProjectType is the project type id that is priced as a 25% discount
// on the selected options instead of contributing its own base price.
const RedesignProjectType = "refonte"

// Level is a section pricing tier
type Level string

const (
	LevelBasic    Level = "basic"
	LevelAdvanced Level = "advanced"
	LevelPremium  Level = "premium"
)

// IsValid reports whether l is one of the three known tiers
func (l Level) IsValid() bool {
	switch l {
	case LevelBasic, LevelAdvanced, LevelPremium:
		return true
	}
	return false
}

type ProjectType struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	BasePrice   float64 `yaml:"basePrice" json:"basePrice"`
	Impact      string  `yaml:"impact,omitempty" json:"impact,omitempty"`
}

type DesignOption struct {
	ID           string   `yaml:"id" json:"id"`
	Category     string   `yaml:"category" json:"category"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	Price        float64  `yaml:"price" json:"price"`
	Dependencies []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// Tier is the price and wording of one section level
type Tier struct {
	Price       float64 `yaml:"price" json:"price"`
	Description string  `yaml:"description" json:"description"`
}

type SectionOption struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Basic    Tier   `yaml:"basic" json:"basic"`
	Advanced Tier   `yaml:"advanced" json:"advanced"`
	Premium  Tier   `yaml:"premium" json:"premium"`
}

// Tier returns the tier for the given level
func (s *SectionOption) Tier(level Level) (Tier, bool) {
	switch level {
	case LevelBasic:
		return s.Basic, true
	case LevelAdvanced:
		return s.Advanced, true
	case LevelPremium:
		return s.Premium, true
	}
	return Tier{}, false
}

type TechnicalFeature struct {
	ID               string   `yaml:"id" json:"id"`
	Category         string   `yaml:"category" json:"category"`
	Name             string   `yaml:"name" json:"name"`
	Description      string   `yaml:"description" json:"description"`
	Price            float64  `yaml:"price" json:"price"`
	RequiredFeatures []string `yaml:"requiredFeatures,omitempty" json:"requiredFeatures,omitempty"`
	Conditions       string   `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

type MaintenanceOption struct {
	ID           string  `yaml:"id" json:"id"`
	Name         string  `yaml:"name" json:"name"`
	Description  string  `yaml:"description" json:"description"`
	SetupPrice   float64 `yaml:"setupPrice" json:"setupPrice"`
	MonthlyPrice float64 `yaml:"monthlyPrice" json:"monthlyPrice"`
}

type PerformanceOption struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Price       float64 `yaml:"price" json:"price"`
}

type ContentOption struct {
	ID          string  `yaml:"id" json:"id"`
	Category    string  `yaml:"category" json:"category"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	UnitPrice   float64 `yaml:"unitPrice" json:"unitPrice"`
	Unit        string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Catalog is the full option table set. The exported slices keep catalog
// order for display; lookups go through the indexes built by New.
type Catalog struct {
	ProjectTypes       []ProjectType       `yaml:"projectTypes" json:"projectTypes"`
	DesignOptions      []DesignOption      `yaml:"designOptions" json:"designOptions"`
	Sections           []SectionOption     `yaml:"sections" json:"sections"`
	TechnicalFeatures  []TechnicalFeature  `yaml:"technicalFeatures" json:"technicalFeatures"`
	MaintenanceOptions []MaintenanceOption `yaml:"maintenanceOptions" json:"maintenanceOptions"`
	PerformanceOptions []PerformanceOption `yaml:"performanceOptions" json:"performanceOptions"`
	ContentOptions     []ContentOption     `yaml:"contentOptions" json:"contentOptions"`

	projectTypes map[string]*ProjectType
	design       map[string]*DesignOption
	sections     map[string]*SectionOption
	technical    map[string]*TechnicalFeature
	maintenance  map[string]*MaintenanceOption
	performance  map[string]*PerformanceOption
	content      map[string]*ContentOption
	order        map[string]int
}

// New validates the tables of c and builds its lookup indexes. The returned
// catalog must not be modified afterwards.
func New(c Catalog) (*Catalog, error) {
	out := Catalog{
		ProjectTypes:       append([]ProjectType(nil), c.ProjectTypes...),
		DesignOptions:      append([]DesignOption(nil), c.DesignOptions...),
		Sections:           append([]SectionOption(nil), c.Sections...),
		TechnicalFeatures:  append([]TechnicalFeature(nil), c.TechnicalFeatures...),
		MaintenanceOptions: append([]MaintenanceOption(nil), c.MaintenanceOptions...),
		PerformanceOptions: append([]PerformanceOption(nil), c.PerformanceOptions...),
		ContentOptions:     append([]ContentOption(nil), c.ContentOptions...),
	}
	out.projectTypes = make(map[string]*ProjectType, len(c.ProjectTypes))
	out.design = make(map[string]*DesignOption, len(c.DesignOptions))
	out.sections = make(map[string]*SectionOption, len(c.Sections))
	out.technical = make(map[string]*TechnicalFeature, len(c.TechnicalFeatures))
	out.maintenance = make(map[string]*MaintenanceOption, len(c.MaintenanceOptions))
	out.performance = make(map[string]*PerformanceOption, len(c.PerformanceOptions))
	out.content = make(map[string]*ContentOption, len(c.ContentOptions))
	out.order = make(map[string]int)

	for i := range out.ProjectTypes {
		p := &out.ProjectTypes[i]
		if err := register(out.projectTypes, "project type", p.ID, p, p.BasePrice); err != nil {
			return nil, err
		}
		out.order["project:"+p.ID] = i
	}
	for i := range out.DesignOptions {
		d := &out.DesignOptions[i]
		if err := register(out.design, "design option", d.ID, d, d.Price); err != nil {
			return nil, err
		}
		out.order["design:"+d.ID] = i
	}
	for i := range out.Sections {
		s := &out.Sections[i]
		if err := register(out.sections, "section", s.ID, s, 0); err != nil {
			return nil, err
		}
		if s.Basic.Price < 0 || s.Advanced.Price < 0 || s.Premium.Price < 0 {
			return nil, fmt.Errorf("section %q has a negative tier price", s.ID)
		}
		out.order["section:"+s.ID] = i
	}
	for i := range out.TechnicalFeatures {
		t := &out.TechnicalFeatures[i]
		if err := register(out.technical, "technical feature", t.ID, t, t.Price); err != nil {
			return nil, err
		}
		out.order["technical:"+t.ID] = i
	}
	for i := range out.MaintenanceOptions {
		m := &out.MaintenanceOptions[i]
		if err := register(out.maintenance, "maintenance option", m.ID, m, m.SetupPrice); err != nil {
			return nil, err
		}
		if m.MonthlyPrice < 0 {
			return nil, fmt.Errorf("maintenance option %q has a negative monthly price", m.ID)
		}
		out.order["maintenance:"+m.ID] = i
	}
	for i := range out.PerformanceOptions {
		p := &out.PerformanceOptions[i]
		if err := register(out.performance, "performance option", p.ID, p, p.Price); err != nil {
			return nil, err
		}
		out.order["performance:"+p.ID] = i
	}
	for i := range out.ContentOptions {
		co := &out.ContentOptions[i]
		if err := register(out.content, "content option", co.ID, co, co.UnitPrice); err != nil {
			return nil, err
		}
		out.order["content:"+co.ID] = i
	}

	for _, d := range out.DesignOptions {
		for _, dep := range d.Dependencies {
			if _, ok := out.design[dep]; !ok {
				return nil, fmt.Errorf("design option %q depends on unknown option %q", d.ID, dep)
			}
		}
	}
	for _, t := range out.TechnicalFeatures {
		for _, dep := range t.RequiredFeatures {
			if _, ok := out.technical[dep]; !ok {
				return nil, fmt.Errorf("technical feature %q requires unknown feature %q", t.ID, dep)
			}
		}
	}

	return &out, nil
}

func register[T any](index map[string]*T, kind, id string, entry *T, price float64) error {
	if id == "" {
		return fmt.Errorf("%s with empty id", kind)
	}
	if _, exists := index[id]; exists {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	if price < 0 {
		return fmt.Errorf("%s %q has a negative price", kind, id)
	}
	index[id] = entry
	return nil
}

func (c *Catalog) ProjectType(id string) (*ProjectType, bool) {
	p, ok := c.projectTypes[id]
	return p, ok
}

func (c *Catalog) DesignOption(id string) (*DesignOption, bool) {
	d, ok := c.design[id]
	return d, ok
}

func (c *Catalog) Section(id string) (*SectionOption, bool) {
	s, ok := c.sections[id]
	return s, ok
}

func (c *Catalog) TechnicalFeature(id string) (*TechnicalFeature, bool) {
	t, ok := c.technical[id]
	return t, ok
}

func (c *Catalog) MaintenanceOption(id string) (*MaintenanceOption, bool) {
	m, ok := c.maintenance[id]
	return m, ok
}

func (c *Catalog) PerformanceOption(id string) (*PerformanceOption, bool) {
	p, ok := c.performance[id]
	return p, ok
}

func (c *Catalog) ContentOption(id string) (*ContentOption, bool) {
	co, ok := c.content[id]
	return co, ok
}

// DesignDependencies returns the direct prerequisites of a design option
func (c *Catalog) DesignDependencies(id string) []string {
	if d, ok := c.design[id]; ok {
		return d.Dependencies
	}
	return nil
}

// TechnicalDependencies returns the direct prerequisites of a technical feature
func (c *Catalog) TechnicalDependencies(id string) []string {
	if t, ok := c.technical[id]; ok {
		return t.RequiredFeatures
	}
	return nil
}

// Position returns the catalog index of an entry of the given kind
// ("design", "section", "technical", "maintenance", "performance", "content").
// Unknown entries sort last.
func (c *Catalog) Position(kind, id string) int {
	if i, ok := c.order[kind+":"+id]; ok {
		return i
	}
	return len(c.order)
}
