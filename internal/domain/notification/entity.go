package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeJobMatch     Type = "job_match"
	TypeStatusChange Type = "status_change"
	TypeGeneral      Type = "general"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Notification struct {
	ID            uuid.UUID
	CandidateID   uuid.UUID
	Type          Type
	Title         string
	Message       string
	JobID         *uuid.UUID
	ApplicationID *uuid.UUID
	IsRead        bool
	ActionURL     string
	Priority      Priority
	CreatedAt     time.Time
}

// Draft is the caller-supplied part of a new notification.
type Draft struct {
	Type          Type
	Title         string
	Message       string
	JobID         *uuid.UUID
	ApplicationID *uuid.UUID
	ActionURL     string
	Priority      Priority
}

// Event is the wire shape pushed to realtime subscribers and the message bus.
type Event struct {
	ID            uuid.UUID  `json:"id"`
	CandidateID   uuid.UUID  `json:"candidateId"`
	Type          Type       `json:"type"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	JobID         *uuid.UUID `json:"jobId,omitempty"`
	ApplicationID *uuid.UUID `json:"applicationId,omitempty"`
	IsRead        bool       `json:"isRead"`
	ActionURL     string     `json:"actionUrl"`
	Priority      Priority   `json:"priority"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (n Notification) Event() Event {
	return Event{
		ID:            n.ID,
		CandidateID:   n.CandidateID,
		Type:          n.Type,
		Title:         n.Title,
		Message:       n.Message,
		JobID:         n.JobID,
		ApplicationID: n.ApplicationID,
		IsRead:        n.IsRead,
		ActionURL:     n.ActionURL,
		Priority:      n.Priority,
		CreatedAt:     n.CreatedAt,
	}
}
