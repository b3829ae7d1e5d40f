package content

import (
	"context"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// MemoryStore serves content defined in Go source or loaded once from a file
type MemoryStore struct {
	content models.Content
}

// NewMemoryStore creates a store over a private copy of c
func NewMemoryStore(c models.Content) *MemoryStore {
	return &MemoryStore{content: c.Clone()}
}

// Profile returns the site owner's profile
func (s *MemoryStore) Profile(context.Context) (models.Profile, error) {
	p := s.content.Profile
	p.Taglines = append([]string(nil), p.Taglines...)
	return p, nil
}

// Projects returns all projects in list order
func (s *MemoryStore) Projects(context.Context) ([]models.Project, error) {
	return append([]models.Project(nil), s.content.Projects...), nil
}

// Work returns the work history in list order
func (s *MemoryStore) Work(context.Context) ([]models.WorkExperience, error) {
	return append([]models.WorkExperience(nil), s.content.Work...), nil
}

// Posts returns all blog posts in list order
func (s *MemoryStore) Posts(context.Context) ([]models.BlogPost, error) {
	return append([]models.BlogPost(nil), s.content.Posts...), nil
}

// SocialLinks returns all social links in list order
func (s *MemoryStore) SocialLinks(context.Context) ([]models.SocialLink, error) {
	return append([]models.SocialLink(nil), s.content.SocialLinks...), nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
