package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/salesboard/salesboard/internal/handlers"
	"github.com/salesboard/salesboard/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	// The dashboard page is a browser client on another origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	dh := handlers.NewDashboardHandlers(deps)
	hh := handlers.NewHealthHandlers(deps)

	r.Get("/healthz", hh.Health)
	r.Mount("/api", dh.DashboardRoutes())
	return r
}
