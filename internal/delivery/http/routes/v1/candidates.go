package v1

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterCandidates mounts every candidate-scoped handler on r, which is
// expected to carry the :id parameter.
func RegisterCandidates(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(r)
	}
	if h.Recommendations != nil {
		h.Recommendations.RegisterRoutes(r)
	}
	if h.Notifications != nil {
		h.Notifications.RegisterRoutes(r)
	}
	if h.SavedJobs != nil {
		h.SavedJobs.RegisterRoutes(r)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(r)
	}
}
