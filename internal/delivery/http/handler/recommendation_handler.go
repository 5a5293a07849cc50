package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxRecommendationLimit = 50

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/recommendations", h.List)
	r.Get("/recommendations/status", h.Status)
}

// List returns ranked jobs for the candidate. limit is optional; 0 or absent
// selects the configured default.
func (h *RecommendationHandler) List(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil || limit < 0 || limit > maxRecommendationLimit {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.GetRecommendations(c.Context(), id, limit)
	if err != nil {
		return mapUsecaseError(err, "Candidate not found")
	}
	out := dto.NewRecommendationResponses(items)
	return response.List(c, out, len(out))
}

func (h *RecommendationHandler) Status(c fiber.Ctx) error {
	id, err := candidateID(c)
	if err != nil {
		return err
	}

	complete := h.uc.IsProfileCompleteForRecommendations(c.Context(), id)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendationStatusResponse{ProfileComplete: complete})
}
