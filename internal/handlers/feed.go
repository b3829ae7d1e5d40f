package handlers

import (
	"bytes"
	"net/http"

	"github.com/lucasaraujonrt/portfolio/internal/feed"
	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/middleware"
	"github.com/lucasaraujonrt/portfolio/internal/services"
)

// FeedHandler serves the blog as RSS
type FeedHandler struct {
	contentService *services.ContentService
	baseURL        string
	log            *logger.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(cs *services.ContentService, baseURL string, log *logger.Logger) *FeedHandler {
	return &FeedHandler{contentService: cs, baseURL: baseURL, log: log}
}

// RSS handles GET /feed.xml
func (h *FeedHandler) RSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.contentService.Profile(ctx)
	if err != nil {
		respondServiceError(w, h.log, err, "Profile not found")
		return
	}
	posts, err := h.contentService.Posts(ctx)
	if err != nil {
		respondServiceError(w, h.log, err, "Posts not found")
		return
	}

	var buf bytes.Buffer
	if err := feed.Write(&buf, feed.ChannelFor(profile, h.baseURL), posts); err != nil {
		h.log.Error(err, "failed to write feed")
		middleware.WriteInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	buf.WriteTo(w)
}
