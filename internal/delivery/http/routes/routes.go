package routes

import (
	"jobboard/internal/delivery/http/handler"
	v1 "jobboard/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Registry owns every HTTP handler and mounts them on an app.
type Registry struct {
	health    *handler.HealthHandler
	handlers  v1.Handlers
	websocket fiber.Handler
}

func NewRegistry(health *handler.HealthHandler, handlers v1.Handlers, websocket fiber.Handler) *Registry {
	return &Registry{health: health, handlers: handlers, websocket: websocket}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWebsocket(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.handlers)
}

func (r *Registry) registerWebsocket(app *fiber.App) {
	if r.websocket == nil {
		return
	}
	app.Get("/ws/candidates/:id", r.websocket)
}
