package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/metrics"
	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/services"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	contentService *services.ContentService
	postService    *services.PostService
	renderer       *views.Renderer
	metrics        metrics.Recorder
	log            *logger.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(cs *services.ContentService, ps *services.PostService, renderer *views.Renderer, rec metrics.Recorder, log *logger.Logger) *PageHandler {
	return &PageHandler{
		contentService: cs,
		postService:    ps,
		renderer:       renderer,
		metrics:        rec,
		log:            log,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	c, err := h.contentService.Content(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, views.HomePage(c))
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	c, err := h.contentService.Content(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, views.AboutPage(c))
}

// Blog handles GET /blog
func (h *PageHandler) Blog(w http.ResponseWriter, r *http.Request) {
	c, err := h.contentService.Content(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, http.StatusOK, views.BlogPage(c))
}

// Post handles GET /blog/{slug}. A post without a body file still renders
// its title and description.
func (h *PageHandler) Post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.contentService.Profile(ctx)
	if err != nil {
		h.fail(w, err)
		return
	}

	slug := chi.URLParam(r, "slug")
	post, err := h.contentService.GetPostBySlug(ctx, slug)
	if errors.Is(err, content.ErrNotFound) {
		h.render(w, http.StatusNotFound, views.NotFoundPage(profile))
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}

	var body template.HTML
	if h.postService != nil {
		body, err = h.postService.Body(slug)
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			h.fail(w, err)
			return
		}
	}

	h.render(w, http.StatusOK, views.PostPage(profile, post, body))
}

// NotFound renders the 404 page for unknown routes
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	profile, err := h.contentService.Profile(r.Context())
	if err != nil {
		profile = models.Profile{}
	}
	h.render(w, http.StatusNotFound, views.NotFoundPage(profile))
}

// Stylesheet handles GET /static/site.css
func (h *PageHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(h.renderer.Stylesheet()))
}

func (h *PageHandler) render(w http.ResponseWriter, status int, page views.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		h.fail(w, err)
		return
	}

	h.metrics.RecordPageView(page.Name)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *PageHandler) fail(w http.ResponseWriter, err error) {
	h.log.Error(err, "failed to render page")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
