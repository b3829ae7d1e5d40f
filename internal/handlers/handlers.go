package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/metrics"
	"github.com/lucasaraujonrt/portfolio/internal/middleware"
	"github.com/lucasaraujonrt/portfolio/internal/services"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

// Deps are the services the router is built from. Metrics, Gatherer,
// Logger and RateLimiter are optional.
type Deps struct {
	Content     *services.ContentService
	Posts       *services.PostService
	Renderer    *views.Renderer
	Metrics     metrics.Recorder
	Gatherer    prometheus.Gatherer
	Logger      *logger.Logger
	RateLimiter *middleware.RateLimiter
	BaseURL     string
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	if d.Metrics == nil {
		d.Metrics = metrics.Nop{}
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewLogging(d.Logger))
	r.Use(middleware.NewMetrics(d.Metrics))
	r.Use(middleware.NewRecovery(d.Logger))

	// Initialize handlers
	pageHandler := NewPageHandler(d.Content, d.Posts, d.Renderer, d.Metrics, d.Logger)
	navHandler := NewNavigationHandler(d.Content, d.Metrics, d.Logger)
	apiHandler := NewAPIHandler(d.Content, d.Logger)
	feedHandler := NewFeedHandler(d.Content, d.BaseURL, d.Logger)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)
	r.Get("/blog", pageHandler.Blog)
	r.Get("/blog/{slug}", pageHandler.Post)
	r.Get("/feed.xml", feedHandler.RSS)
	r.NotFound(pageHandler.NotFound)

	// Outbound navigation
	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware)
		}
		r.Get("/go/{kind}/{id}", navHandler.Redirect)
		r.Post("/go/{kind}/{id}", navHandler.Beacon)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware)
		}

		r.Get("/profile", apiHandler.GetProfile)
		r.Get("/projects", apiHandler.ListProjects)
		r.Get("/projects/{id}", apiHandler.GetProject)
		r.Get("/work", apiHandler.ListWork)
		r.Get("/work/{id}", apiHandler.GetWork)
		r.Get("/posts", apiHandler.ListPosts)
		r.Get("/posts/{id}", apiHandler.GetPost)
		r.Get("/social", apiHandler.ListSocial)
		r.Get("/typography", apiHandler.Typography)

		// Health check
		r.Get("/health", apiHandler.Health)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "not_found", "Unknown endpoint")
		})
	})

	// Static files
	r.Get("/static/site.css", pageHandler.Stylesheet)
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(views.Static())))

	if d.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(d.Gatherer))
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, log *logger.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error(err, "failed to encode response")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, code, message string) {
	middleware.WriteError(w, status, code, message)
}

// respondServiceError maps a service error onto the shared error body
func respondServiceError(w http.ResponseWriter, log *logger.Logger, err error, notFound string) {
	if errors.Is(err, content.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", notFound)
		return
	}
	log.Error(err, "content lookup failed")
	middleware.WriteInternalServerError(w)
}
