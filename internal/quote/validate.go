// Package quote validates client-submitted quote snapshots and renders them
// as downloadable documents.
package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/simulator"
)

// Bounds applied to submitted quotes
const (
	MaxContentQuantity   = 50
	MaxSelections        = 100
	MaxTotal             = 100000.0
	MaxDuration          = 365.0
	MaxComplexity        = 1000.0
	MaxClientNameLength  = 100
	MaxQuoteNumberLength = 50
)

// ErrInvalidQuote is returned for structural violations and cap breaches
var ErrInvalidQuote = errors.New("invalid quote data")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuote, fmt.Sprintf(format, args...))
}

// Result is a validated quote. Quote carries the figures recomputed from the
// cleaned selections; Submitted keeps what the client sent.
type Result struct {
	Quote               domain.QuoteData
	Submitted           domain.QuotePricing
	SubmittedEstimation domain.QuoteEstimation
	Dropped             int
}

// PricingMismatch reports whether the client totals differ from the server ones
func (r *Result) PricingMismatch() bool {
	return r.Submitted.Subtotal != r.Quote.Pricing.Subtotal ||
		r.Submitted.Total != r.Quote.Pricing.Total
}

// Validator checks submitted QuoteData against a catalog
type Validator struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewValidator(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c, now: time.Now}
}

// Validate parses raw as a QuoteData object. Structural violations and cap
// breaches reject the whole quote; individual entries that are malformed,
// unknown or duplicated are dropped. Pricing and estimation of the returned
// quote are recomputed from the surviving selections.
func (v *Validator) Validate(raw json.RawMessage) (*Result, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return nil, invalid("quoteData must be an object")
	}

	projectType, ok := body["projectType"].(string)
	if !ok {
		return nil, invalid("projectType must be a string")
	}
	if _, known := v.catalog.ProjectType(projectType); !known {
		return nil, invalid("unknown projectType %q", projectType)
	}

	sel, dropped, err := v.selections(body["selections"])
	if err != nil {
		return nil, err
	}

	pricing, err := submittedPricing(body["pricing"])
	if err != nil {
		return nil, err
	}
	estimation, err := submittedEstimation(body["estimation"])
	if err != nil {
		return nil, err
	}

	sim, err := simulator.FromSelections(v.catalog, projectType, sel)
	if err != nil {
		// every id was checked against the catalog above
		return nil, invalid("%v", err)
	}

	generatedAt := v.now()
	if s, ok := body["generatedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			generatedAt = t
		}
	}

	return &Result{
		Quote:               sim.Snapshot(generatedAt),
		Submitted:           pricing,
		SubmittedEstimation: estimation,
		Dropped:             dropped,
	}, nil
}

func (v *Validator) selections(value interface{}) (domain.QuoteSelections, int, error) {
	sel := domain.QuoteSelections{Content: map[string]int{}}
	if value == nil {
		return sel, 0, nil
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return sel, 0, invalid("selections must be an object")
	}

	lists := map[string][]interface{}{}
	count := 0
	for _, key := range []string{"design", "sections", "technical", "maintenance", "performance"} {
		raw, present := obj[key]
		if !present || raw == nil {
			continue
		}
		arr, ok := raw.([]interface{})
		if !ok {
			return sel, 0, invalid("selections.%s must be an array", key)
		}
		lists[key] = arr
		count += len(arr)
	}

	var content map[string]interface{}
	if raw, present := obj["content"]; present && raw != nil {
		content, ok = raw.(map[string]interface{})
		if !ok {
			return sel, 0, invalid("selections.content must be an object")
		}
		count += len(content)
	}
	if count > MaxSelections {
		return sel, 0, invalid("too many selections: %d (max %d)", count, MaxSelections)
	}

	dropped := 0
	keep := func(arr []interface{}, known func(string) bool) []string {
		out := []string{}
		for _, item := range arr {
			id, ok := item.(string)
			if !ok || !known(id) || containsString(out, id) {
				dropped++
				continue
			}
			out = append(out, id)
		}
		return out
	}

	c := v.catalog
	sel.Design = keep(lists["design"], func(id string) bool { _, ok := c.DesignOption(id); return ok })
	sel.Technical = keep(lists["technical"], func(id string) bool { _, ok := c.TechnicalFeature(id); return ok })
	sel.Maintenance = keep(lists["maintenance"], func(id string) bool { _, ok := c.MaintenanceOption(id); return ok })
	sel.Performance = keep(lists["performance"], func(id string) bool { _, ok := c.PerformanceOption(id); return ok })

	sel.Sections = []domain.SectionSelection{}
	seen := map[string]bool{}
	for _, item := range lists["sections"] {
		entry, ok := item.(map[string]interface{})
		if !ok {
			dropped++
			continue
		}
		id, _ := entry["sectionId"].(string)
		level, _ := entry["level"].(string)
		if _, known := c.Section(id); !known || !catalog.Level(level).IsValid() || seen[id] {
			dropped++
			continue
		}
		seen[id] = true
		sel.Sections = append(sel.Sections, domain.SectionSelection{SectionID: id, Level: catalog.Level(level)})
	}

	for id, raw := range content {
		qty, ok := raw.(float64)
		if ok && qty > MaxContentQuantity {
			return sel, 0, invalid("content quantity for %q exceeds %d", id, MaxContentQuantity)
		}
		if _, known := c.ContentOption(id); !ok || !known || qty <= 0 || qty != math.Trunc(qty) {
			dropped++
			continue
		}
		sel.Content[id] = int(qty)
	}

	return sel, dropped, nil
}

func submittedPricing(value interface{}) (domain.QuotePricing, error) {
	var p domain.QuotePricing
	obj, ok := value.(map[string]interface{})
	if !ok {
		return p, invalid("pricing must be an object")
	}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"subtotal", &p.Subtotal},
		{"tax", &p.Tax},
		{"total", &p.Total},
	}
	for _, f := range fields {
		n, ok := obj[f.name].(float64)
		if !ok {
			return p, invalid("pricing.%s must be a number", f.name)
		}
		if n < 0 {
			return p, invalid("pricing.%s must not be negative", f.name)
		}
		*f.dst = n
	}
	if p.Total > MaxTotal {
		return p, invalid("pricing.total exceeds %.0f", MaxTotal)
	}
	if n, ok := obj["monthly"].(float64); ok && n >= 0 {
		p.Monthly = n
	}
	return p, nil
}

func submittedEstimation(value interface{}) (domain.QuoteEstimation, error) {
	var e domain.QuoteEstimation
	if value == nil {
		return e, nil
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		return e, invalid("estimation must be an object")
	}
	bounded := func(name string, max float64) (int, error) {
		raw, present := obj[name]
		if !present || raw == nil {
			return 0, nil
		}
		n, ok := raw.(float64)
		if !ok {
			return 0, invalid("estimation.%s must be a number", name)
		}
		if n < 0 || n > max {
			return 0, invalid("estimation.%s must be between 0 and %.0f", name, max)
		}
		return int(math.Round(n)), nil
	}

	var err error
	if e.Duration, err = bounded("duration", MaxDuration); err != nil {
		return e, err
	}
	if e.Complexity, err = bounded("complexity", MaxComplexity); err != nil {
		return e, err
	}
	return e, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// markup is the set of characters removed from free text
const markup = "<>\"'&`/\\;"

// SanitizeText strips markup-like and control characters from s, trims it
// and truncates it to max runes
func SanitizeText(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) || strings.ContainsRune(markup, r) {
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	if utf8.RuneCountInString(out) > max {
		out = strings.TrimSpace(string([]rune(out)[:max]))
	}
	return out
}
