package quote

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/webfolio/portfolio-api/internal/catalog"
)

// Renderer turns a Document into a downloadable file
type Renderer interface {
	Render(doc Document) ([]byte, error)
	ContentType() string
	Extension() string
}

const (
	pageMargin  = 15.0
	labelWidth  = 85.0
	detailWidth = 55.0
	amountWidth = 40.0
	rowHeight   = 7.0
)

// PDFRenderer lays a quote out on A4 pages
type PDFRenderer struct {
	catalog *catalog.Catalog
}

func NewPDFRenderer(c *catalog.Catalog) *PDFRenderer {
	return &PDFRenderer{catalog: c}
}

func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Extension() string { return "pdf" }

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	number := doc.Number()
	pdf.SetTitle("Devis "+number, true)
	pdf.SetAuthor(doc.Issuer.Name, true)
	pdf.SetCreator(doc.Issuer.Name, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		footer := fmt.Sprintf("%s - Devis %s - Page %d/{nb}", doc.Issuer.Name, number, pdf.PageNo())
		pdf.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	r.header(pdf, tr, doc, number)
	r.summary(pdf, tr, doc)
	r.table(pdf, tr, doc)
	r.totals(pdf, tr, doc)
	r.terms(pdf, tr, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) header(pdf *fpdf.Fpdf, tr func(string) string, doc Document, number string) {
	iss := doc.Issuer

	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(110, 9, tr(iss.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 9, "DEVIS", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	left := []string{iss.Title, iss.Address, iss.Email, iss.Phone, iss.Website}
	if iss.Siret != "" {
		left = append(left, "SIRET "+iss.Siret)
	}
	right := []string{
		"N° " + number,
		"Date : " + doc.IssuedAt.Format("02/01/2006"),
	}
	if doc.ValidityDays > 0 {
		right = append(right, "Valable jusqu'au "+doc.IssuedAt.AddDate(0, 0, doc.ValidityDays).Format("02/01/2006"))
	}
	for i := 0; i < len(left) || i < len(right); i++ {
		var l, rt string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			rt = right[i]
		}
		if l == "" && rt == "" {
			continue
		}
		pdf.CellFormat(110, 5, tr(l), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, tr(rt), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	client := doc.ClientName
	if client == "" {
		client = "Client"
	}
	pdf.SetFillColor(243, 244, 246)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Destinataire : "+client), "", 1, "L", true, 0, "")
	pdf.Ln(4)
}

func (r *PDFRenderer) summary(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	q := doc.Quote
	projectName := q.ProjectType
	if p, ok := r.catalog.ProjectType(q.ProjectType); ok {
		projectName = p.Name
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr("Projet : "+projectName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	days := "jour"
	if q.Estimation.Duration > 1 {
		days = "jours"
	}
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Durée estimée : %d %s ouvrés", q.Estimation.Duration, days)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Complexité : "+complexityLabel(q.Estimation.Level)), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func (r *PDFRenderer) table(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	pdf.SetFillColor(31, 41, 55)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, rowHeight+1, tr("Prestation"), "", 0, "L", true, 0, "")
	pdf.CellFormat(detailWidth, rowHeight+1, tr("Détail"), "", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, rowHeight+1, tr("Montant HT"), "", 1, "R", true, 0, "")

	pdf.SetTextColor(30, 30, 30)
	group := ""
	for _, l := range Lines(r.catalog, doc.Quote) {
		if l.Group != group {
			group = l.Group
			pdf.SetFillColor(243, 244, 246)
			pdf.SetFont("Helvetica", "B", 9)
			pdf.CellFormat(labelWidth+detailWidth+amountWidth, rowHeight-1, tr(group), "", 1, "L", true, 0, "")
		}
		detail := l.Detail
		if l.Monthly > 0 {
			detail += " + " + FormatEUR(l.Monthly) + "/mois"
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(labelWidth, rowHeight, tr(truncate(l.Label, 60)), "B", 0, "L", false, 0, "")
		pdf.CellFormat(detailWidth, rowHeight, tr(truncate(detail, 38)), "B", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, rowHeight, tr(FormatEUR(l.Amount)), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) totals(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	p := doc.Quote.Pricing
	rows := []struct {
		label  string
		amount float64
		bold   bool
	}{
		{"Total HT", p.Subtotal, false},
		{"TVA (20 %)", p.Tax, false},
		{"Total TTC", p.Total, true},
	}
	offset := labelWidth + detailWidth - 50
	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}
		pdf.SetX(pageMargin + offset)
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(50, rowHeight, tr(row.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, rowHeight, tr(FormatEUR(row.amount)), "", 1, "R", false, 0, "")
	}
	if p.Monthly > 0 {
		pdf.SetX(pageMargin + offset)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(50, rowHeight, tr("Maintenance mensuelle HT"), "", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, rowHeight, tr(FormatEUR(p.Monthly)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)
}

func (r *PDFRenderer) terms(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	text := "Estimation indicative établie à partir du simulateur en ligne. " +
		"Un acompte de 30 % est demandé à la signature, le solde à la livraison."
	if doc.ValidityDays > 0 {
		text += fmt.Sprintf(" Devis valable %d jours.", doc.ValidityDays)
	}
	pdf.MultiCell(0, 5, tr(text), "", "L", false)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(0, 6, tr("Bon pour accord, date et signature :"), "", 1, "L", false, 0, "")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
