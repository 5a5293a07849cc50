package dto

import (
	"time"

	"jobboard/internal/domain/fields"
	"jobboard/internal/domain/job"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
)

// JobRequest is the body of job create and update calls. The list fields
// accept either a JSON array or a newline separated string.
type JobRequest struct {
	Title            string     `json:"title" validate:"required,max=200"`
	Company          string     `json:"company" validate:"required,max=200"`
	Description      string     `json:"description" validate:"max=20000"`
	Location         string     `json:"location" validate:"max=200"`
	JobType          string     `json:"jobType" validate:"max=50"`
	ExperienceLevel  string     `json:"experienceLevel" validate:"max=50"`
	Requirements     any        `json:"requirements"`
	Responsibilities any        `json:"responsibilities"`
	Benefits         any        `json:"benefits"`
	SalaryMin        int        `json:"salaryMin" validate:"gte=0"`
	SalaryMax        int        `json:"salaryMax" validate:"gte=0,gtefield=SalaryMin"`
	PostedDate       *time.Time `json:"postedDate"`
}

func (r JobRequest) Input() usecase.JobInput {
	return usecase.JobInput{
		Title:            r.Title,
		Company:          r.Company,
		Description:      r.Description,
		Location:         r.Location,
		JobType:          r.JobType,
		ExperienceLevel:  r.ExperienceLevel,
		Requirements:     fields.ParseRequirements(r.Requirements),
		Responsibilities: fields.ParseRequirements(r.Responsibilities),
		Benefits:         fields.ParseRequirements(r.Benefits),
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		PostedAt:         r.PostedDate,
	}
}

type JobResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	JobType          string    `json:"jobType"`
	ExperienceLevel  string    `json:"experienceLevel"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Benefits         []string  `json:"benefits"`
	SalaryMin        int       `json:"salaryMin"`
	SalaryMax        int       `json:"salaryMax"`
	ApplicationCount int       `json:"applicationCount"`
	PostedDate       string    `json:"postedDate,omitempty"`
}

func NewJobResponse(p job.Posting) JobResponse {
	posted := ""
	if p.PostedAt != nil && !p.PostedAt.IsZero() {
		posted = p.PostedAt.UTC().Format(time.RFC3339)
	}
	return JobResponse{
		ID:               p.ID,
		Title:            p.Title,
		Company:          p.Company,
		Description:      p.Description,
		Location:         p.Location,
		JobType:          string(p.JobType),
		ExperienceLevel:  string(p.ExperienceLevel),
		Requirements:     orEmpty(p.Requirements),
		Responsibilities: orEmpty(p.Responsibilities),
		Benefits:         orEmpty(p.Benefits),
		SalaryMin:        p.Salary.Min,
		SalaryMax:        p.Salary.Max,
		ApplicationCount: p.ApplicationCount,
		PostedDate:       posted,
	}
}

func NewJobResponses(in []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(in))
	for _, p := range in {
		out = append(out, NewJobResponse(p))
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
