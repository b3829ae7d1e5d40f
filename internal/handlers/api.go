package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/services"
	"github.com/lucasaraujonrt/portfolio/internal/typography"
)

// APIHandler serves content as JSON
type APIHandler struct {
	contentService *services.ContentService
	log            *logger.Logger
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(cs *services.ContentService, log *logger.Logger) *APIHandler {
	return &APIHandler{contentService: cs, log: log}
}

// GetProfile handles GET /api/profile
func (h *APIHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.contentService.Profile(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "Profile not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, profile)
}

// ListProjects handles GET /api/projects
func (h *APIHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.contentService.Projects(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "Projects not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *APIHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.contentService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "Project not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, project)
}

// ListWork handles GET /api/work
func (h *APIHandler) ListWork(w http.ResponseWriter, r *http.Request) {
	work, err := h.contentService.Work(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "Work experience not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, work)
}

// GetWork handles GET /api/work/{id}
func (h *APIHandler) GetWork(w http.ResponseWriter, r *http.Request) {
	work, err := h.contentService.GetWork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "Work experience not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, work)
}

// ListPosts handles GET /api/posts
func (h *APIHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.contentService.Posts(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "Posts not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, posts)
}

// GetPost handles GET /api/posts/{id}
func (h *APIHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err, "Post not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, post)
}

// ListSocial handles GET /api/social
func (h *APIHandler) ListSocial(w http.ResponseWriter, r *http.Request) {
	links, err := h.contentService.SocialLinks(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "Social links not found")
		return
	}

	type socialLink struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Link  string `json:"link"`
	}
	out := make([]socialLink, len(links))
	for i, l := range links {
		out[i] = socialLink{ID: l.ID(), Label: l.Label, Link: l.Link}
	}
	respondJSON(w, h.log, http.StatusOK, out)
}

// Typography handles GET /api/typography
func (h *APIHandler) Typography(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, typography.Table())
}

// Health handles GET /api/health
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.contentService.Profile(r.Context()); err != nil {
		h.log.Error(err, "health check failed")
		respondError(w, http.StatusServiceUnavailable, "unavailable", "Content store unavailable")
		return
	}
	respondJSON(w, h.log, http.StatusOK, map[string]string{"status": "ok"})
}
