package services

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"sync"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/security"
)

// PostService loads post bodies from <slug>.html files
type PostService struct {
	fsys      fs.FS
	sanitizer security.Sanitizer

	mu     sync.RWMutex
	bodies map[string]template.HTML // cached, already sanitized
}

// NewPostService creates a new PostService. A nil fsys serves no bodies.
func NewPostService(fsys fs.FS, sanitizer security.Sanitizer) *PostService {
	return &PostService{
		fsys:      fsys,
		sanitizer: sanitizer,
		bodies:    make(map[string]template.HTML),
	}
}

// Body returns the sanitized body of the post at /blog/<slug>. It returns
// content.ErrNotFound when there is no file for the slug.
func (s *PostService) Body(slug string) (template.HTML, error) {
	if s.fsys == nil {
		return "", content.ErrNotFound
	}

	name := slug + ".html"
	if slug == "" || strings.Contains(slug, "/") || !fs.ValidPath(name) {
		return "", fmt.Errorf("post body %q: %w", slug, content.ErrNotFound)
	}

	s.mu.RLock()
	body, cached := s.bodies[slug]
	s.mu.RUnlock()
	if cached {
		return body, nil
	}

	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("post body %q: %w", slug, content.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read post body: %w", err)
	}

	body = template.HTML(s.sanitizer.Sanitize(string(data)))

	s.mu.Lock()
	s.bodies[slug] = body
	s.mu.Unlock()

	return body, nil
}

// Reset drops every cached body
func (s *PostService) Reset() {
	s.mu.Lock()
	s.bodies = make(map[string]template.HTML)
	s.mu.Unlock()
}
