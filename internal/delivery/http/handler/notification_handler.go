package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/notification"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/notifications", h.List)
	r.Post("/notifications", h.Create)
	r.Delete("/notifications", h.ClearAll)
	r.Get("/notifications/recent", h.Recent)
	r.Get("/notifications/unread-count", h.UnreadCount)
	r.Patch("/notifications/read-all", h.MarkAllAsRead)
	r.Post("/notifications/status-change", h.CreateStatusChange)
	r.Patch("/notifications/:notificationId/read", h.MarkAsRead)
	r.Delete("/notifications/:notificationId", h.Delete)
}

// List returns every notification, newest first, optionally filtered by ?type=.
func (h *NotificationHandler) List(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	var items []notification.Notification
	if typ := c.Query("type"); typ != "" {
		items, err = h.uc.ListByType(c.Context(), id, notification.Type(typ))
	} else {
		items, err = h.uc.List(c.Context(), id)
	}
	if err != nil {
		return mapUsecaseError(err, "Notification not found")
	}

	out := dto.NewNotificationResponses(items)
	return response.List(c, out, len(out))
}

func (h *NotificationHandler) Recent(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil || limit < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.Recent(c.Context(), id, limit)
	if err != nil {
		return mapUsecaseError(err, "Notification not found")
	}
	out := dto.NewNotificationResponses(items)
	return response.List(c, out, len(out))
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.UnreadCount(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Notification not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UnreadCountResponse{Count: n})
}

func (h *NotificationHandler) Create(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	var req dto.CreateNotificationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	n, err := h.uc.Create(c.Context(), id, req.Draft())
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, n.Event())
}

func (h *NotificationHandler) CreateStatusChange(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	var req dto.StatusChangeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	n, err := h.uc.CreateStatusChangeNotification(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, n.Event())
}

func (h *NotificationHandler) MarkAsRead(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	nid, err := parseUUIDParam(c, "notificationId", "Invalid notification id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkAsRead(c.Context(), id, nid); err != nil {
		return mapUsecaseError(err, "Notification not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *NotificationHandler) MarkAllAsRead(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.MarkAllAsRead(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Notification not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AffectedResponse{Affected: n})
}

func (h *NotificationHandler) Delete(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	nid, err := parseUUIDParam(c, "notificationId", "Invalid notification id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id, nid); err != nil {
		return mapUsecaseError(err, "Notification not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) ClearAll(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.ClearAll(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Notification not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AffectedResponse{Affected: n})
}
