package dto

import (
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/notification"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	Type          string     `json:"type" validate:"omitempty,oneof=job_match status_change general"`
	Title         string     `json:"title" validate:"required,max=200"`
	Message       string     `json:"message" validate:"required,max=2000"`
	JobID         *uuid.UUID `json:"jobId"`
	ApplicationID *uuid.UUID `json:"applicationId"`
	ActionURL     string     `json:"actionUrl" validate:"max=500"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=high medium low"`
}

func (r CreateNotificationRequest) Draft() notification.Draft {
	return notification.Draft{
		Type:          notification.Type(r.Type),
		Title:         r.Title,
		Message:       r.Message,
		JobID:         r.JobID,
		ApplicationID: r.ApplicationID,
		ActionURL:     r.ActionURL,
		Priority:      notification.Priority(r.Priority),
	}
}

type StatusChangeRequest struct {
	ApplicationID uuid.UUID `json:"applicationId" validate:"required"`
	JobID         uuid.UUID `json:"jobId"`
	Status        string    `json:"status" validate:"required,max=50"`
	JobTitle      string    `json:"jobTitle" validate:"required,max=200"`
	CompanyName   string    `json:"companyName" validate:"required,max=200"`
}

func (r StatusChangeRequest) Input() usecase.StatusChange {
	return usecase.StatusChange{
		ApplicationID: r.ApplicationID,
		JobID:         r.JobID,
		Status:        application.Status(r.Status),
		JobTitle:      r.JobTitle,
		CompanyName:   r.CompanyName,
	}
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type AffectedResponse struct {
	Affected int64 `json:"affected"`
}

func NewNotificationResponses(in []notification.Notification) []notification.Event {
	out := make([]notification.Event, 0, len(in))
	for _, n := range in {
		out = append(out, n.Event())
	}
	return out
}
