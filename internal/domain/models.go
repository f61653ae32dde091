package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the columns shared by every table
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an id so that sqlite and postgres behave the same
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// SubmissionStatus tracks the delivery of a contact submission
type SubmissionStatus string

const (
	SubmissionStatusReceived SubmissionStatus = "received"
	SubmissionStatusSent     SubmissionStatus = "sent"
	SubmissionStatusDevMode  SubmissionStatus = "dev_mode"
	SubmissionStatusFailed   SubmissionStatus = "failed"
)

// Submission is a lead received through the contact form
type Submission struct {
	BaseModel
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:255;not null;index"`
	Phone   string `gorm:"size:30"`
	Company string `gorm:"size:100"`
	Budget  string `gorm:"size:50"`
	Message string `gorm:"type:text;not null"`

	// Quote fields are empty when the form was sent without a simulation
	ProjectType  string   `gorm:"size:100"`
	QuoteTotal   *float64 `gorm:"type:numeric(12,2)"`
	QuoteJSON    string   `gorm:"column:quote_json;type:text"`
	DocumentKey  string   `gorm:"size:500"`
	DocumentName string   `gorm:"size:255"`

	Status    SubmissionStatus `gorm:"size:20;not null;default:'received';index"`
	LastError string           `gorm:"type:text"`
	IPAddress string           `gorm:"size:64"`
}

func (Submission) TableName() string {
	return "submissions"
}

// HasQuote reports whether a quote was attached to the submission
func (s *Submission) HasQuote() bool {
	return s.QuoteJSON != ""
}
