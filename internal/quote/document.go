package quote

import (
	"sort"
	"strings"
	"time"

	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/simulator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Issuer is the freelancer printed at the top of every document
type Issuer struct {
	Name    string
	Title   string
	Email   string
	Phone   string
	Website string
	Address string
	Siret   string
}

// Document is everything a renderer needs to produce one quote file
type Document struct {
	Quote        domain.QuoteData
	ClientName   string
	QuoteNumber  string
	Issuer       Issuer
	ValidityDays int
	IssuedAt     time.Time
}

// Number returns the quote reference, generating one from the issue date
// when none was given
func (d *Document) Number() string {
	if d.QuoteNumber != "" {
		return d.QuoteNumber
	}
	return "DEV-" + d.IssuedAt.Format("20060102-1504")
}

// Line is one priced row of a document
type Line struct {
	Group   string
	Label   string
	Detail  string
	Amount  float64
	Monthly float64
}

// Lines expands the selections of q into priced rows, in catalog order.
// For a redesign the discount is added as a negative row so that the rows
// always sum to the subtotal.
func Lines(c *catalog.Catalog, q domain.QuoteData) []Line {
	var lines []Line
	var sum float64

	add := func(l Line) {
		lines = append(lines, l)
		sum += l.Amount
	}

	if p, ok := c.ProjectType(q.ProjectType); ok {
		l := Line{Group: "Projet", Label: p.Name, Detail: p.Description, Amount: p.BasePrice}
		if p.ID == catalog.RedesignProjectType {
			l.Amount = 0
		}
		add(l)
	}
	for _, id := range q.Selections.Design {
		if d, ok := c.DesignOption(id); ok {
			add(Line{Group: "Design", Label: d.Name, Detail: d.Category, Amount: d.Price})
		}
	}
	for _, s := range q.Selections.Sections {
		sec, ok := c.Section(s.SectionID)
		if !ok {
			continue
		}
		if tier, ok := sec.Tier(s.Level); ok {
			add(Line{Group: "Sections", Label: sec.Name, Detail: levelLabel(s.Level), Amount: tier.Price})
		}
	}
	for _, id := range q.Selections.Technical {
		if f, ok := c.TechnicalFeature(id); ok {
			add(Line{Group: "Fonctionnalités", Label: f.Name, Detail: f.Category, Amount: f.Price})
		}
	}
	for _, id := range q.Selections.Performance {
		if p, ok := c.PerformanceOption(id); ok {
			add(Line{Group: "Performance", Label: p.Name, Amount: p.Price})
		}
	}

	ids := make([]string, 0, len(q.Selections.Content))
	for id := range q.Selections.Content {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return c.Position("content", ids[i]) < c.Position("content", ids[j])
	})
	for _, id := range ids {
		co, ok := c.ContentOption(id)
		if !ok {
			continue
		}
		qty := q.Selections.Content[id]
		detail := printer.Sprintf("%d × %s", qty, FormatEUR(co.UnitPrice))
		if co.Unit != "" {
			detail += " / " + co.Unit
		}
		add(Line{Group: "Contenu", Label: co.Name, Detail: detail, Amount: co.UnitPrice * float64(qty)})
	}

	for _, id := range q.Selections.Maintenance {
		if m, ok := c.MaintenanceOption(id); ok {
			add(Line{Group: "Maintenance", Label: m.Name, Detail: "mise en place", Amount: m.SetupPrice, Monthly: m.MonthlyPrice})
		}
	}

	if q.ProjectType == catalog.RedesignProjectType && sum > 0 {
		lines = append(lines, Line{
			Group:  "Projet",
			Label:  "Remise refonte",
			Detail: printer.Sprintf("%.0f %%", (1-simulator.RedesignRate)*100),
			Amount: q.Pricing.Subtotal - sum,
		})
	}
	return lines
}

func levelLabel(l catalog.Level) string {
	switch l {
	case catalog.LevelBasic:
		return "Essentiel"
	case catalog.LevelAdvanced:
		return "Avancé"
	case catalog.LevelPremium:
		return "Premium"
	}
	return string(l)
}

func complexityLabel(level string) string {
	switch level {
	case simulator.ComplexitySimple:
		return "Simple"
	case simulator.ComplexityStandard:
		return "Standard"
	case simulator.ComplexityComplex:
		return "Complexe"
	}
	return level
}

var printer = message.NewPrinter(language.French)

// FormatEUR prints an amount the French way with plain spaces as grouping
func FormatEUR(v float64) string {
	s := printer.Sprintf("%.2f", v)
	s = strings.NewReplacer("\u202f", " ", "\u00a0", " ").Replace(s)
	return s + " €"
}
