package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the hiring stage of an application.
type Status string

const (
	StatusApplied     Status = "applied"
	StatusUnderReview Status = "under-review"
	StatusInterview   Status = "interview"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
)

var statuses = []Status{StatusApplied, StatusUnderReview, StatusInterview, StatusAccepted, StatusRejected}

// ParseStatus accepts any casing and an underscore in place of the hyphen.
func ParseStatus(s string) (Status, bool) {
	norm := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	for _, st := range statuses {
		if st == norm {
			return st, true
		}
	}
	return "", false
}

type Application struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Status      Status
	CoverLetter string
	Notes       string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}
