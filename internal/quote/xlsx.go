package quote

import (
	"fmt"

	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the quote
const SheetName = "Devis"

// XLSXRenderer exports a quote as a single-sheet workbook
type XLSXRenderer struct {
	catalog *catalog.Catalog
}

func NewXLSXRenderer(c *catalog.Catalog) *XLSXRenderer {
	return &XLSXRenderer{catalog: c}
}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *XLSXRenderer) Extension() string { return "xlsx" }

func (r *XLSXRenderer) Render(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(`#,##0.00 "€"`)})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	q := doc.Quote
	projectName := q.ProjectType
	if p, ok := r.catalog.ProjectType(q.ProjectType); ok {
		projectName = p.Name
	}

	set := func(cell string, v interface{}) {
		if err == nil {
			err = f.SetCellValue(SheetName, cell, v)
		}
	}

	set("A1", "Devis")
	set("B1", doc.Number())
	set("A2", "Émetteur")
	set("B2", doc.Issuer.Name)
	set("A3", "Client")
	set("B3", doc.ClientName)
	set("A4", "Date")
	set("B4", doc.IssuedAt.Format("02/01/2006"))
	set("A5", "Projet")
	set("B5", projectName)
	set("A6", "Durée estimée (jours)")
	set("B6", q.Estimation.Duration)
	set("A7", "Complexité")
	set("B7", complexityLabel(q.Estimation.Level))

	const headerRow = 9
	for col, title := range []string{"Catégorie", "Prestation", "Détail", "Montant HT", "Mensuel HT"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, headerRow)
		set(cell, title)
	}

	row := headerRow + 1
	for _, l := range Lines(r.catalog, q) {
		set(fmt.Sprintf("A%d", row), l.Group)
		set(fmt.Sprintf("B%d", row), l.Label)
		set(fmt.Sprintf("C%d", row), l.Detail)
		set(fmt.Sprintf("D%d", row), l.Amount)
		if l.Monthly > 0 {
			set(fmt.Sprintf("E%d", row), l.Monthly)
		}
		row++
	}

	row++
	totalsStart := row
	for _, t := range []struct {
		label  string
		amount float64
	}{
		{"Total HT", q.Pricing.Subtotal},
		{"TVA (20 %)", q.Pricing.Tax},
		{"Total TTC", q.Pricing.Total},
		{"Maintenance mensuelle HT", q.Pricing.Monthly},
	} {
		set(fmt.Sprintf("C%d", row), t.label)
		set(fmt.Sprintf("D%d", row), t.amount)
		row++
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fill sheet: %w", err)
	}

	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A7", bold},
		{fmt.Sprintf("A%d", headerRow), fmt.Sprintf("E%d", headerRow), bold},
		{fmt.Sprintf("D%d", headerRow+1), fmt.Sprintf("E%d", row), money},
		{fmt.Sprintf("C%d", totalsStart), fmt.Sprintf("C%d", row-1), bold},
	}
	for _, s := range styles {
		if err := f.SetCellStyle(SheetName, s.from, s.to, s.style); err != nil {
			return nil, fmt.Errorf("failed to style sheet: %w", err)
		}
	}
	_ = f.SetColWidth(SheetName, "A", "A", 24)
	_ = f.SetColWidth(SheetName, "B", "C", 36)
	_ = f.SetColWidth(SheetName, "D", "E", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string { return &s }
