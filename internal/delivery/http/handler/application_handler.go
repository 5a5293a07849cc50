package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterRoutes mounts the candidate-scoped routes.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/applications", h.ListByCandidate)
	r.Post("/applications", h.Create)
	r.Patch("/applications/:applicationId", h.UpdateStatus)
	r.Delete("/applications/:applicationId", h.Delete)
}

// RegisterJobRoutes mounts the per-job listing under the jobs group.
func (h *ApplicationHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:jobId/applications", h.ListByJob)
}

func (h *ApplicationHandler) ListByCandidate(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GetByCandidate(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	return response.List(c, dto.NewApplicationResponses(items), len(items))
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	items, err := h.uc.GetByJob(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.List(c, dto.NewApplicationResponses(items), len(items))
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	var req dto.CreateApplicationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.Create(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(a))
}

// UpdateStatus sends a status_change notification when the stage changes.
func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	appID, err := parseUUIDParam(c, "applicationId", "Invalid application id")
	if err != nil {
		return err
	}
	var req dto.UpdateApplicationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.UpdateStatus(c.Context(), id, appID, req.Input())
	if err != nil {
		return mapUsecaseError(err, "Application not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	appID, err := parseUUIDParam(c, "applicationId", "Invalid application id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id, appID); err != nil {
		return mapUsecaseError(err, "Application not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
