package v1

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Jobs            *handler.JobHandler
	Candidates      *handler.CandidateHandler
	Recommendations *handler.RecommendationHandler
	Notifications   *handler.NotificationHandler
	SavedJobs       *handler.SavedJobHandler
	Applications    *handler.ApplicationHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	jobs := r.Group("/jobs")
	RegisterJobs(jobs, h.Jobs)
	if h.Applications != nil {
		h.Applications.RegisterJobRoutes(jobs)
	}

	candidate := r.Group("/candidates/:id", middleware.CandidateParam())
	RegisterCandidates(candidate, h)
}
