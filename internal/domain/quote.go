package domain

import (
	"time"

	"github.com/webfolio/portfolio-api/internal/catalog"
)

// SectionSelection is one page section with its chosen tier
type SectionSelection struct {
	SectionID string        `json:"sectionId" validate:"required,max=100"`
	Level     catalog.Level `json:"level" validate:"required,oneof=basic advanced premium"`
}

// QuoteSelections lists everything chosen in the simulator, in catalog order
type QuoteSelections struct {
	Design      []string           `json:"design"`
	Sections    []SectionSelection `json:"sections"`
	Technical   []string           `json:"technical"`
	Maintenance []string           `json:"maintenance"`
	Performance []string           `json:"performance"`
	Content     map[string]int     `json:"content"`
}

// QuotePricing holds amounts in euros. Subtotal excludes tax; Monthly is the
// recurring maintenance cost and is not part of Subtotal.
type QuotePricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Monthly  float64 `json:"monthly"`
}

type QuoteEstimation struct {
	Duration   int    `json:"duration"`
	Complexity int    `json:"complexity"`
	Level      string `json:"level,omitempty"`
}

// QuoteData is a finalized simulator selection with its computed figures.
// Values are copied on creation and never mutated afterwards.
type QuoteData struct {
	ProjectType string          `json:"projectType"`
	Selections  QuoteSelections `json:"selections"`
	Pricing     QuotePricing    `json:"pricing"`
	Estimation  QuoteEstimation `json:"estimation"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// SelectionCount is the number of selected entries across all categories
func (q *QuoteData) SelectionCount() int {
	s := q.Selections
	return len(s.Design) + len(s.Sections) + len(s.Technical) +
		len(s.Maintenance) + len(s.Performance) + len(s.Content)
}
