package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/metrics"
	"github.com/lucasaraujonrt/portfolio/internal/services"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

// NavigationHandler records clicks on project, work and social rows
type NavigationHandler struct {
	contentService *services.ContentService
	metrics        metrics.Recorder
	log            *logger.Logger
}

// NewNavigationHandler creates a new NavigationHandler
func NewNavigationHandler(cs *services.ContentService, rec metrics.Recorder, log *logger.Logger) *NavigationHandler {
	return &NavigationHandler{contentService: cs, metrics: rec, log: log}
}

// Redirect handles GET /go/{kind}/{id}
func (h *NavigationHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	kind, id := chi.URLParam(r, "kind"), chi.URLParam(r, "id")

	link, err := h.resolve(r.Context(), kind, id)
	if err != nil {
		respondServiceError(w, h.log, err, "Link not found")
		return
	}

	h.metrics.RecordNavigation(kind, id)
	http.Redirect(w, r, link, http.StatusFound)
}

// Beacon handles POST /go/{kind}/{id}, sent by the page script when a row
// is clicked
func (h *NavigationHandler) Beacon(w http.ResponseWriter, r *http.Request) {
	kind, id := chi.URLParam(r, "kind"), chi.URLParam(r, "id")

	if _, err := h.resolve(r.Context(), kind, id); err != nil {
		respondServiceError(w, h.log, err, "Link not found")
		return
	}

	h.metrics.RecordNavigation(kind, id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *NavigationHandler) resolve(ctx context.Context, kind, id string) (string, error) {
	switch kind {
	case views.KindProject:
		p, err := h.contentService.GetProject(ctx, id)
		return p.Link, err
	case views.KindWork:
		w, err := h.contentService.GetWork(ctx, id)
		return w.Link, err
	case views.KindSocial:
		s, err := h.contentService.GetSocialLink(ctx, id)
		return s.Link, err
	}
	return "", content.ErrNotFound
}
