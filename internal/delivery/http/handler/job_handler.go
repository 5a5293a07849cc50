package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:jobId", h.Get)
	r.Put("/:jobId", h.Update)
	r.Delete("/:jobId", h.Delete)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	out := dto.NewJobResponses(items)
	return response.List(c, out, len(out))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), req.Input())
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(p))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), id, req.Input())
	if err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(p))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "jobId", "Invalid job id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err, "Job not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
