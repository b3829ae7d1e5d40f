// Package content holds the site's display data and the stores that serve it.
//
// Content is read-only at runtime. Every Store returns copies, so callers are
// free to modify what they get back.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// ErrNotFound is returned when an entry with the requested id doesn't exist
var ErrNotFound = errors.New("not found")

// Store serves the site's content lists
type Store interface {
	Profile(ctx context.Context) (models.Profile, error)
	Projects(ctx context.Context) ([]models.Project, error)
	Work(ctx context.Context) ([]models.WorkExperience, error)
	Posts(ctx context.Context) ([]models.BlogPost, error)
	SocialLinks(ctx context.Context) ([]models.SocialLink, error)
	Close() error
}

// Kind names a Store implementation
type Kind string

const (
	KindMemory   Kind = "memory"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// Snapshot reads every list from s into a single Content value
func Snapshot(ctx context.Context, s Store) (models.Content, error) {
	var (
		c   models.Content
		err error
	)

	if c.Profile, err = s.Profile(ctx); err != nil {
		return c, fmt.Errorf("reading profile: %w", err)
	}
	if c.Projects, err = s.Projects(ctx); err != nil {
		return c, fmt.Errorf("reading projects: %w", err)
	}
	if c.Work, err = s.Work(ctx); err != nil {
		return c, fmt.Errorf("reading work experience: %w", err)
	}
	if c.Posts, err = s.Posts(ctx); err != nil {
		return c, fmt.Errorf("reading posts: %w", err)
	}
	if c.SocialLinks, err = s.SocialLinks(ctx); err != nil {
		return c, fmt.Errorf("reading social links: %w", err)
	}

	return c, nil
}
