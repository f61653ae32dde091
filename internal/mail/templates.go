package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

// ContactEmail is the data shown in both contact emails
type ContactEmail struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Budget   string
	Message  string
	Quote    *QuoteSummary
	SiteName string
}

// QuoteSummary is the short version of an attached quote
type QuoteSummary struct {
	Number      string
	ProjectType string
	TotalHT     string
	TotalTTC    string
	Monthly     string
	Duration    int
	Filename    string
}

var ownerHTML = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html lang="fr"><body style="font-family:Arial,sans-serif;color:#1f2937">
<h2>Nouveau message de {{.Name}}</h2>
<table cellpadding="4">
<tr><td><strong>Email</strong></td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
{{if .Phone}}<tr><td><strong>Téléphone</strong></td><td>{{.Phone}}</td></tr>{{end}}
{{if .Company}}<tr><td><strong>Entreprise</strong></td><td>{{.Company}}</td></tr>{{end}}
{{if .Budget}}<tr><td><strong>Budget</strong></td><td>{{.Budget}}</td></tr>{{end}}
</table>
<h3>Message</h3>
<p style="white-space:pre-wrap">{{.Message}}</p>
{{with .Quote}}<h3>Devis joint {{.Number}}</h3>
<ul>
<li>Projet : {{.ProjectType}}</li>
<li>Total HT : {{.TotalHT}}</li>
<li>Total TTC : {{.TotalTTC}}</li>
{{if .Monthly}}<li>Maintenance : {{.Monthly}} / mois</li>{{end}}
<li>Durée estimée : {{.Duration}} jours</li>
</ul>{{end}}
</body></html>`))

var ownerText = texttemplate.Must(texttemplate.New("owner").Parse(`Nouveau message de {{.Name}} <{{.Email}}>
{{if .Phone}}Téléphone : {{.Phone}}
{{end}}{{if .Company}}Entreprise : {{.Company}}
{{end}}{{if .Budget}}Budget : {{.Budget}}
{{end}}
{{.Message}}
{{with .Quote}}
Devis joint {{.Number}} : {{.ProjectType}}, {{.TotalHT}} HT / {{.TotalTTC}} TTC, {{.Duration}} jours
{{end}}`))

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="fr"><body style="font-family:Arial,sans-serif;color:#1f2937">
<p>Bonjour {{.Name}},</p>
<p>Merci pour votre message, je reviens vers vous sous 48 heures ouvrées.</p>
{{with .Quote}}<p>Vous trouverez ci-joint votre estimation {{.Number}} ({{.TotalTTC}} TTC).</p>{{end}}
<p>À très bientôt,<br>{{.SiteName}}</p>
</body></html>`))

// OwnerMessage builds the notification sent to the site owner
func OwnerMessage(to, subjectPrefix string, data ContactEmail, attachments []Attachment) (Message, error) {
	var html, text bytes.Buffer
	if err := ownerHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to render email: %w", err)
	}
	if err := ownerText.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("failed to render email: %w", err)
	}

	subject := "Nouveau contact : " + data.Name
	if data.Quote != nil {
		subject += " (devis " + data.Quote.TotalTTC + " TTC)"
	}
	if subjectPrefix != "" {
		subject = subjectPrefix + " " + subject
	}

	return Message{
		To:          []string{to},
		ReplyTo:     data.Email,
		Subject:     stripNewlines(subject),
		HTML:        html.String(),
		Text:        text.String(),
		Attachments: attachments,
	}, nil
}

// ConfirmationMessage builds the acknowledgement sent back to the visitor
func ConfirmationMessage(replyTo string, data ContactEmail, attachments []Attachment) (Message, error) {
	var html bytes.Buffer
	if err := confirmationHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to render email: %w", err)
	}
	return Message{
		To:          []string{data.Email},
		ReplyTo:     replyTo,
		Subject:     stripNewlines("Votre demande a bien été reçue - " + data.SiteName),
		HTML:        html.String(),
		Attachments: attachments,
	}, nil
}

func stripNewlines(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
