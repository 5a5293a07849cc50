package handler

import (
	"context"
	"time"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything whose liveness the health check reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports 200 while the database answers and 503 otherwise.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := "up"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status = "down"
		}
	}

	data := fiber.Map{"database": status}
	if status != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
