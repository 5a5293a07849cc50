package dto

import (
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
)

type CreateApplicationRequest struct {
	JobID       uuid.UUID `json:"jobId" validate:"required"`
	CoverLetter string    `json:"coverLetter" validate:"max=10000"`
}

func (r CreateApplicationRequest) Input() usecase.ApplicationInput {
	return usecase.ApplicationInput{JobID: r.JobID, CoverLetter: r.CoverLetter}
}

type UpdateApplicationRequest struct {
	Status string  `json:"status" validate:"required,max=50"`
	Notes  *string `json:"notes" validate:"omitempty,max=5000"`
}

func (r UpdateApplicationRequest) Input() usecase.ApplicationUpdate {
	return usecase.ApplicationUpdate{Status: r.Status, Notes: r.Notes}
}

type ApplicationResponse struct {
	ID          uuid.UUID          `json:"id"`
	CandidateID uuid.UUID          `json:"candidateId"`
	JobID       uuid.UUID          `json:"jobId"`
	Status      application.Status `json:"status"`
	CoverLetter string             `json:"coverLetter"`
	Notes       string             `json:"notes"`
	AppliedAt   time.Time          `json:"appliedDate"`
	UpdatedAt   time.Time          `json:"lastUpdated"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		CandidateID: a.CandidateID,
		JobID:       a.JobID,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		Notes:       a.Notes,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationResponses(in []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(in))
	for _, a := range in {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
