package mapper

import (
	"encoding/json"

	"github.com/webfolio/portfolio-api/internal/domain"
	"github.com/webfolio/portfolio-api/internal/simulator"
)

// ToSubmissionDTO converts Submission to SubmissionDTO. The stored quote is
// decoded when present; a corrupt quote column is left out of the DTO.
func ToSubmissionDTO(s *domain.Submission) domain.SubmissionDTO {
	dto := domain.SubmissionDTO{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		Company:      s.Company,
		Budget:       s.Budget,
		Message:      s.Message,
		ProjectType:  s.ProjectType,
		QuoteTotal:   s.QuoteTotal,
		DocumentName: s.DocumentName,
		Status:       s.Status,
		LastError:    s.LastError,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}

	if s.HasQuote() {
		var q domain.QuoteData
		if err := json.Unmarshal([]byte(s.QuoteJSON), &q); err == nil {
			dto.Quote = &q
		}
	}

	return dto
}

// ToSimulatorStateDTO converts a simulator State to its API shape
func ToSimulatorStateDTO(st simulator.State) domain.SimulatorStateDTO {
	return domain.SimulatorStateDTO{
		ProjectType:        st.ProjectType,
		DesignOptions:      st.DesignOptions,
		Sections:           st.Sections,
		TechnicalFeatures:  st.TechnicalFeatures,
		MaintenanceOptions: st.MaintenanceOptions,
		PerformanceOptions: st.PerformanceOptions,
		ContentOptions:     st.ContentOptions,
		TotalPrice:         st.TotalPrice,
		EstimatedDuration:  st.EstimatedDuration,
		Complexity:         st.Complexity,
	}
}
