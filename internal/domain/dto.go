package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/catalog"
)

// ContactRequest is the body of POST /api/contact
type ContactRequest struct {
	Name      string          `json:"name" validate:"required,max=100"`
	Email     string          `json:"email" validate:"required,email,max=255"`
	Phone     string          `json:"phone,omitempty" validate:"max=30"`
	Company   string          `json:"company,omitempty" validate:"max=100"`
	Budget    string          `json:"budget,omitempty" validate:"max=50"`
	Message   string          `json:"message" validate:"required,max=5000"`
	QuoteData json.RawMessage `json:"quoteData,omitempty" swaggertype:"object"`
}

// HasQuote reports whether a non-null quoteData was submitted
func (r *ContactRequest) HasQuote() bool {
	return len(r.QuoteData) > 0 && string(r.QuoteData) != "null"
}

// ContactResponse is returned when the contact request was accepted
type ContactResponse struct {
	Success      bool       `json:"success"`
	DevMode      bool       `json:"devMode,omitempty"`
	Message      string     `json:"message"`
	SubmissionID *uuid.UUID `json:"submissionId,omitempty"`
}

// GenerateQuoteRequest is the body of the quote document endpoints
type GenerateQuoteRequest struct {
	QuoteData   json.RawMessage `json:"quoteData" swaggertype:"object"`
	ClientName  string          `json:"clientName,omitempty"`
	QuoteNumber string          `json:"quoteNumber,omitempty"`
}

// EstimateRequest is a stateless simulator selection
type EstimateRequest struct {
	ProjectType string          `json:"projectType" validate:"max=100"`
	Selections  QuoteSelections `json:"selections"`
}

// SetProjectTypeRequest selects a project type; an empty string clears it
type SetProjectTypeRequest struct {
	ProjectType string `json:"projectType" validate:"max=100"`
}

type SetSectionRequest struct {
	Level catalog.Level `json:"level" validate:"required,oneof=basic advanced premium"`
}

// SetContentRequest sets a content quantity; zero or less removes the entry
type SetContentRequest struct {
	Quantity int `json:"quantity" validate:"lte=50"`
}

// SimulatorStateDTO is the selection state returned by the simulator endpoints
type SimulatorStateDTO struct {
	ProjectType        string             `json:"projectType"`
	DesignOptions      []string           `json:"designOptions"`
	Sections           []SectionSelection `json:"sections"`
	TechnicalFeatures  []string           `json:"technicalFeatures"`
	MaintenanceOptions []string           `json:"maintenanceOptions"`
	PerformanceOptions []string           `json:"performanceOptions"`
	ContentOptions     map[string]int     `json:"contentOptions"`
	TotalPrice         int                `json:"totalPrice"`
	EstimatedDuration  int                `json:"estimatedDuration"`
	Complexity         int                `json:"complexity"`
}

// SessionDTO is a server-side simulator session
type SessionDTO struct {
	ID        uuid.UUID         `json:"id"`
	State     SimulatorStateDTO `json:"state"`
	Tax       float64           `json:"tax"`
	TotalTTC  float64           `json:"totalTtc"`
	Monthly   float64           `json:"monthly"`
	Level     string            `json:"complexityLevel"`
	ExpiresAt string            `json:"expiresAt"`
}

// EstimateResponse is the normalised selection and its quote snapshot
type EstimateResponse struct {
	State SimulatorStateDTO `json:"state"`
	Quote QuoteData         `json:"quote"`
}

// SubmissionDTO is the admin view of a contact submission
type SubmissionDTO struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone,omitempty"`
	Company      string           `json:"company,omitempty"`
	Budget       string           `json:"budget,omitempty"`
	Message      string           `json:"message"`
	ProjectType  string           `json:"projectType,omitempty"`
	QuoteTotal   *float64         `json:"quoteTotal,omitempty"`
	Quote        *QuoteData       `json:"quote,omitempty"`
	DocumentName string           `json:"documentName,omitempty"`
	Status       SubmissionStatus `json:"status"`
	LastError    string           `json:"lastError,omitempty"`
	CreatedAt    string           `json:"createdAt"`
}

// PaginatedResponse is the envelope for list endpoints
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// PrincipalDTO describes the authenticated admin caller
type PrincipalDTO struct {
	Subject string   `json:"subject"`
	Name    string   `json:"name"`
	Method  string   `json:"method"`
	Roles   []string `json:"roles"`
}

// IssueTokenRequest asks for a signed admin bearer token
type IssueTokenRequest struct {
	Subject    string `json:"subject" validate:"required,max=100"`
	Name       string `json:"name" validate:"max=100"`
	TTLMinutes int    `json:"ttlMinutes" validate:"gte=0,lte=43200"`
}

// TokenResponse carries a signed admin bearer token
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresAt string `json:"expiresAt"`
}

// SubmissionStatsResponse counts submissions per delivery status
type SubmissionStatsResponse struct {
	Total    int64                      `json:"total"`
	ByStatus map[SubmissionStatus]int64 `json:"byStatus"`
}
