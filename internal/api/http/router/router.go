package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/clinic-server/internal/api/http/handler"
	"github.com/dtroode/clinic-server/internal/api/http/middleware"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
	"github.com/dtroode/clinic-server/internal/service"
)

// BasePath prefixes every API route except the health check.
const BasePath = "/api/v1"

// Services groups the application services served over HTTP.
type Services struct {
	Auth        *service.Auth
	Tokens      *service.TokenService
	Users       *service.User
	Directory   *service.Directory
	Specialties *service.Specialty
	Schedules   *service.Schedule
	DB          handler.Pinger
}

// Options holds transport settings.
type Options struct {
	Cookie         handler.CookieConfig
	RequestTimeout time.Duration
}

// Router builds the HTTP handler of the clinic API.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires middleware and routes and returns the root handler.
// Everything except registration, login, refresh and the health check
// requires a valid access token.
func (r *Router) Register() http.Handler {
	root := chi.NewRouter()

	health := handler.NewHealth(r.services.DB, r.logger)
	root.Get("/healthz", health.Check)

	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)

	root.Route(BasePath, func(api chi.Router) {
		r.registerAuthRoutes(api, authenticate)

		api.Group(func(protected chi.Router) {
			protected.Use(authenticate.Handler)
			r.registerUserRoutes(protected)
			r.registerDirectoryRoutes(protected)
			r.registerSpecialtyRoutes(protected)
			r.registerScheduleRoutes(protected)
		})
	})

	return middleware.Chain(root,
		middleware.Recover(r.logger),
		middleware.RequestID(),
		middleware.Logging(r.logger),
		middleware.Timeout(r.options.RequestTimeout),
	)
}

func (r *Router) registerAuthRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewAuth(r.services.Auth, r.services.Tokens, r.contextManager, r.options.Cookie, r.logger)

	api.Post("/auth/register", h.Register)
	api.Post("/auth/login", h.Login)
	api.Post("/auth/refresh", h.Refresh)
	api.With(authenticate.Handler).Post("/auth/logout", h.Logout)
}

func (r *Router) registerUserRoutes(api chi.Router) {
	h := handler.NewUser(r.services.Users, r.contextManager, service.MaxAvatarSize, r.logger)

	api.Get("/users", h.List)
	api.Get("/users/me", h.Me)
	api.Get("/users/{id}", h.Get)
	api.Patch("/users/{id}", h.Update)
	api.Delete("/users/{id}", h.Delete)
	api.Put("/users/{id}/avatar", h.UploadAvatar)
	api.Get("/users/{id}/avatar", h.Avatar)
}

func (r *Router) registerDirectoryRoutes(api chi.Router) {
	h := handler.NewDirectory(r.services.Directory, r.logger)

	api.Get("/branches", h.ListBranches)
	api.Post("/branches", h.CreateBranch)
	api.Get("/branches/{id}", h.GetBranch)
	api.Patch("/branches/{id}", h.UpdateBranch)
	api.Delete("/branches/{id}", h.DeleteBranch)

	api.Get("/sections", h.ListSections)
	api.Post("/sections", h.CreateSection)
	api.Get("/sections/{id}", h.GetSection)
	api.Patch("/sections/{id}", h.UpdateSection)
	api.Delete("/sections/{id}", h.DeleteSection)

	api.Get("/rooms", h.ListRooms)
	api.Post("/rooms", h.CreateRoom)
	api.Get("/rooms/{id}", h.GetRoom)
	api.Patch("/rooms/{id}", h.UpdateRoom)
	api.Delete("/rooms/{id}", h.DeleteRoom)
}

func (r *Router) registerSpecialtyRoutes(api chi.Router) {
	h := handler.NewSpecialty(r.services.Specialties, r.logger)

	api.Get("/specialties", h.List)
	api.Post("/specialties", h.Create)
	api.Get("/specialties/{id}", h.Get)
	api.Patch("/specialties/{id}", h.Update)
	api.Delete("/specialties/{id}", h.Delete)
}

func (r *Router) registerScheduleRoutes(api chi.Router) {
	h := handler.NewSchedule(r.services.Schedules, r.logger)

	api.Get("/schedules", h.List)
	api.Post("/schedules", h.Create)
	api.Get("/schedules/{id}", h.Get)
	api.Patch("/schedules/{id}", h.Update)
	api.Delete("/schedules/{id}", h.Delete)
}
