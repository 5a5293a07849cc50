package dto

import (
	"time"

	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type SavedJobResponse struct {
	JobID   uuid.UUID `json:"jobId"`
	SavedAt time.Time `json:"savedAt"`
}

type SavedStatusResponse struct {
	Saved bool `json:"saved"`
}

func NewSavedJobResponses(in []repository.SavedJob) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(in))
	for _, s := range in {
		out = append(out, SavedJobResponse{JobID: s.JobID, SavedAt: s.SavedAt})
	}
	return out
}
