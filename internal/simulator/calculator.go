package simulator

import (
	"math"
	"sort"

	"github.com/webfolio/portfolio-api/internal/catalog"
)

const (
	// HourlyRate and HoursPerDay turn a price into working days (420 €/day)
	HourlyRate  = 70.0
	HoursPerDay = 6.0

	TaxRate = 0.20

	// RedesignRate is applied to the whole total for the redesign project type
	RedesignRate = 0.75
)

// Totals are the derived fields of a selection
type Totals struct {
	TotalPrice        int `json:"totalPrice"`
	EstimatedDuration int `json:"estimatedDuration"`
	Complexity        int `json:"complexity"`
}

// Calculate derives price, duration and complexity from st. Amounts are
// accumulated as floats and only rounded when the totals are produced.
// Entries that are not in the catalog contribute nothing.
func Calculate(c *catalog.Catalog, st *State) Totals {
	var total, complexity float64

	if st.ProjectType != "" && st.ProjectType != catalog.RedesignProjectType {
		if p, ok := c.ProjectType(st.ProjectType); ok {
			total += p.BasePrice
			complexity += p.BasePrice / 100
		}
	}

	for _, id := range st.DesignOptions {
		if d, ok := c.DesignOption(id); ok {
			total += d.Price
			complexity += d.Price / 50
		}
	}

	for _, sel := range st.Sections {
		s, ok := c.Section(sel.SectionID)
		if !ok {
			continue
		}
		if tier, ok := s.Tier(sel.Level); ok {
			total += tier.Price
			complexity += tier.Price / 50
		}
	}

	for _, id := range st.TechnicalFeatures {
		if f, ok := c.TechnicalFeature(id); ok {
			total += f.Price
			complexity += f.Price / 50
		}
	}

	// only the setup fee is part of the total, monthly fees are reported apart
	for _, id := range st.MaintenanceOptions {
		if m, ok := c.MaintenanceOption(id); ok {
			total += m.SetupPrice
			complexity += m.SetupPrice / 100
		}
	}

	for _, id := range st.PerformanceOptions {
		if p, ok := c.PerformanceOption(id); ok {
			total += p.Price
			complexity += p.Price / 50
		}
	}

	// sorted so repeated runs sum in the same order
	ids := make([]string, 0, len(st.ContentOptions))
	for id := range st.ContentOptions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		qty := st.ContentOptions[id]
		if qty <= 0 {
			continue
		}
		if co, ok := c.ContentOption(id); ok {
			amount := co.UnitPrice * float64(qty)
			total += amount
			complexity += amount / 100
		}
	}

	if st.ProjectType == catalog.RedesignProjectType && total > 0 {
		total *= RedesignRate
	}

	days := math.Ceil(total / HourlyRate / HoursPerDay)

	return Totals{
		TotalPrice:        int(math.Round(total)),
		EstimatedDuration: int(days),
		Complexity:        int(math.Round(complexity)),
	}
}

// Tax returns the VAT amount for a tax-exclusive subtotal
func Tax(subtotal float64) float64 {
	return math.Round(subtotal * TaxRate)
}

// TotalWithTax returns the tax-inclusive amount for a subtotal
func TotalWithTax(subtotal float64) float64 {
	return math.Round(subtotal * (1 + TaxRate))
}

// MonthlyMaintenance sums the recurring price of the given maintenance options
func MonthlyMaintenance(c *catalog.Catalog, ids []string) float64 {
	var sum float64
	for _, id := range ids {
		if m, ok := c.MaintenanceOption(id); ok {
			sum += m.MonthlyPrice
		}
	}
	return sum
}

// Complexity bands
const (
	ComplexitySimple   = "simple"
	ComplexityStandard = "standard"
	ComplexityComplex  = "complex"
)

// ComplexityLevel maps a complexity score to its band
func ComplexityLevel(score int) string {
	switch {
	case score < 30:
		return ComplexitySimple
	case score < 80:
		return ComplexityStandard
	default:
		return ComplexityComplex
	}
}
