package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedJobHandler struct {
	uc usecase.SavedJobUsecase
}

func NewSavedJobHandler(uc usecase.SavedJobUsecase) *SavedJobHandler {
	return &SavedJobHandler{uc: uc}
}

func (h *SavedJobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/saved-jobs", h.List)
	r.Get("/saved-jobs/:jobId", h.IsSaved)
	r.Put("/saved-jobs/:jobId", h.Save)
	r.Delete("/saved-jobs/:jobId", h.Unsave)
}

func (h *SavedJobHandler) List(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	out := dto.NewSavedJobResponses(items)
	return response.List(c, out, len(out))
}

func (h *SavedJobHandler) IsSaved(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	saved, err := h.uc.IsSaved(c.Context(), id, jobID)
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SavedStatusResponse{Saved: saved})
}

// Save is idempotent; saving a job twice keeps the first timestamp.
func (h *SavedJobHandler) Save(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	if err := h.uc.Save(c.Context(), id, jobID); err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SavedStatusResponse{Saved: true})
}

func (h *SavedJobHandler) Unsave(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	if err := h.uc.Unsave(c.Context(), id, jobID); err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
