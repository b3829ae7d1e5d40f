package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// PostSource supplies posts imported from outside the content store
type PostSource interface {
	Posts() []models.BlogPost
}

// ContentService handles content-related operations
type ContentService struct {
	store      content.Store
	syndicated PostSource
}

// NewContentService creates a new ContentService. syndicated may be nil.
func NewContentService(store content.Store, syndicated PostSource) *ContentService {
	return &ContentService{store: store, syndicated: syndicated}
}

// Profile returns the site owner's profile
func (s *ContentService) Profile(ctx context.Context) (models.Profile, error) {
	return s.store.Profile(ctx)
}

// Email returns the contact email
func (s *ContentService) Email(ctx context.Context) (string, error) {
	p, err := s.store.Profile(ctx)
	if err != nil {
		return "", err
	}
	return p.Email, nil
}

// Projects returns all projects
func (s *ContentService) Projects(ctx context.Context) ([]models.Project, error) {
	return s.store.Projects(ctx)
}

// GetProject returns a specific project by ID
func (s *ContentService) GetProject(ctx context.Context, id string) (models.Project, error) {
	projects, err := s.store.Projects(ctx)
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project %q: %w", id, content.ErrNotFound)
}

// Work returns the work history, most recent first
func (s *ContentService) Work(ctx context.Context) ([]models.WorkExperience, error) {
	work, err := s.store.Work(ctx)
	if err != nil {
		return nil, err
	}
	return content.SortWork(work), nil
}

// GetWork returns a specific work entry by ID
func (s *ContentService) GetWork(ctx context.Context, id string) (models.WorkExperience, error) {
	work, err := s.store.Work(ctx)
	if err != nil {
		return models.WorkExperience{}, err
	}
	for _, w := range work {
		if w.ID == id {
			return w, nil
		}
	}
	return models.WorkExperience{}, fmt.Errorf("work %q: %w", id, content.ErrNotFound)
}

// Posts returns the posts hosted here followed by syndicated ones
func (s *ContentService) Posts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return nil, err
	}
	if s.syndicated != nil {
		posts = append(posts, s.syndicated.Posts()...)
	}
	return posts, nil
}

// GetPost returns a specific post by ID
func (s *ContentService) GetPost(ctx context.Context, id string) (models.BlogPost, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return models.BlogPost{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.BlogPost{}, fmt.Errorf("post %q: %w", id, content.ErrNotFound)
}

// GetPostBySlug returns the hosted post whose link is /blog/<slug>
func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return models.BlogPost{}, err
	}
	for _, p := range posts {
		if slug != "" && p.Slug() == slug {
			return p, nil
		}
	}
	return models.BlogPost{}, fmt.Errorf("post /blog/%s: %w", slug, content.ErrNotFound)
}

// SocialLinks returns all social links
func (s *ContentService) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	return s.store.SocialLinks(ctx)
}

// GetSocialLink returns a social link by its slugified label
func (s *ContentService) GetSocialLink(ctx context.Context, id string) (models.SocialLink, error) {
	links, err := s.store.SocialLinks(ctx)
	if err != nil {
		return models.SocialLink{}, err
	}
	for _, l := range links {
		if l.ID() == id {
			return l, nil
		}
	}
	return models.SocialLink{}, fmt.Errorf("social link %q: %w", id, content.ErrNotFound)
}

// Content returns everything the views need in display order
func (s *ContentService) Content(ctx context.Context) (models.Content, error) {
	c, err := content.Snapshot(ctx, s.store)
	if err != nil {
		return c, err
	}
	c.Work = content.SortWork(c.Work)
	if s.syndicated != nil {
		c.Posts = append(c.Posts, s.syndicated.Posts()...)
	}
	return c, nil
}

// Check validates the stored content, including id uniqueness
func (s *ContentService) Check(ctx context.Context) error {
	c, err := content.Snapshot(ctx, s.store)
	if err != nil {
		return err
	}
	return errors.Join(content.Validate(c), content.CheckUniqueIDs(c))
}
