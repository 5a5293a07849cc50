package dto

import (
	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/fields"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	ID                uuid.UUID         `json:"id"`
	FullName          string            `json:"fullName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Location          string            `json:"location"`
	Skills            []string          `json:"skills"`
	Experience        []fields.Position `json:"experience"`
	PreferredJobTypes []string          `json:"preferredJobTypes"`
	ProfileSummary    string            `json:"profileSummary"`
	ResumeURL         string            `json:"resumeUrl"`
}

func NewCandidateResponse(p candidate.Profile) CandidateResponse {
	exp := p.Experience
	if exp == nil {
		exp = []fields.Position{}
	}
	return CandidateResponse{
		ID:                p.ID,
		FullName:          p.FullName,
		Email:             p.Email,
		Phone:             p.Phone,
		Location:          p.Location,
		Skills:            orEmpty(p.Skills),
		Experience:        exp,
		PreferredJobTypes: orEmpty(p.PreferredJobTypes),
		ProfileSummary:    p.ProfileSummary,
		ResumeURL:         p.ResumeURL,
	}
}
