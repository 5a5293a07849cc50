package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxCandidateIDKey = "candidate_id"

// CandidateParam resolves the :id route parameter once for every handler in
// a candidate-scoped group.
func CandidateParam() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil || id == uuid.Nil {
			return NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
		}
		c.Locals(CtxCandidateIDKey, id)
		return c.Next()
	}
}

// CandidateID returns the id stored by CandidateParam.
func CandidateID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxCandidateIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
