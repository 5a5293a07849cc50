package handler

import (
	"encoding/json"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/fields"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// RegisterRoutes expects r to be a group already guarded by middleware.CandidateParam.
func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetProfile)
	r.Put("/", h.UpsertProfile)
}

func (h *CandidateHandler) GetProfile(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(p))
}

// UpsertProfile accepts any record shape the field aliases understand, so the
// body is decoded as a loose map rather than a fixed struct.
func (h *CandidateHandler) UpsertProfile(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	var rec fields.Record
	if err := json.Unmarshal(c.Body(), &rec); err != nil || rec == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, err := h.uc.UpsertProfile(c.Context(), id, rec)
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(p))
}
