package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// Dialect selects the placeholder syntax for a SQL backend
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// SQLStore serves content from the tables created by the database package
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an open database; Close closes it
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

// rebind rewrites ? placeholders to $n for PostgreSQL
func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Empty reports whether the store has never been seeded
func (s *SQLStore) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profile`).Scan(&n); err != nil {
		return false, fmt.Errorf("count profile rows: %w", err)
	}
	return n == 0, nil
}

// Seed writes c into empty tables inside one transaction.
// It does nothing when the store already holds content.
func (s *SQLStore) Seed(ctx context.Context, c models.Content) error {
	empty, err := s.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	p := c.Profile
	if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO profile
		(id, name, handle, handle_link, headline, subtitle, taglines, email, avatar, animation)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		p.Name, p.Handle, p.HandleLink, p.Headline, p.Subtitle,
		strings.Join(p.Taglines, "\n"), p.Email, p.Avatar, p.Animation,
	); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	for i, pr := range c.Projects {
		if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO projects
			(id, position, name, description, link, video) VALUES (?, ?, ?, ?, ?, ?)`),
			pr.ID, i, pr.Name, pr.Description, pr.Link, pr.Video,
		); err != nil {
			return fmt.Errorf("insert project %s: %w", pr.ID, err)
		}
	}

	for i, w := range c.Work {
		if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO work_experience
			(id, position, company, title, start_period, end_period, link) VALUES (?, ?, ?, ?, ?, ?, ?)`),
			w.ID, i, w.Company, w.Title, w.Start.String(), w.End.String(), w.Link,
		); err != nil {
			return fmt.Errorf("insert work %s: %w", w.ID, err)
		}
	}

	for i, post := range c.Posts {
		if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO posts
			(id, position, title, description, link) VALUES (?, ?, ?, ?, ?)`),
			post.ID, i, post.Title, post.Description, post.Link,
		); err != nil {
			return fmt.Errorf("insert post %s: %w", post.ID, err)
		}
	}

	for i, sl := range c.SocialLinks {
		if _, err := tx.ExecContext(ctx, s.rebind(`INSERT INTO social_links
			(position, label, link) VALUES (?, ?, ?)`),
			i, sl.Label, sl.Link,
		); err != nil {
			return fmt.Errorf("insert social link %s: %w", sl.Label, err)
		}
	}

	return tx.Commit()
}

// Profile returns the site owner's profile
func (s *SQLStore) Profile(ctx context.Context) (models.Profile, error) {
	var (
		p        models.Profile
		taglines string
	)

	err := s.db.QueryRowContext(ctx, `SELECT name, handle, handle_link, headline, subtitle,
		taglines, email, avatar, animation FROM profile WHERE id = 1`,
	).Scan(&p.Name, &p.Handle, &p.HandleLink, &p.Headline, &p.Subtitle,
		&taglines, &p.Email, &p.Avatar, &p.Animation)
	if errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("profile: %w", ErrNotFound)
	}
	if err != nil {
		return p, fmt.Errorf("query profile: %w", err)
	}

	if taglines != "" {
		p.Taglines = strings.Split(taglines, "\n")
	}
	return p, nil
}

// Projects returns all projects in list order
func (s *SQLStore) Projects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, link, video FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Link, &p.Video); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Work returns the work history in list order
func (s *SQLStore) Work(ctx context.Context) ([]models.WorkExperience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company, title, start_period, end_period, link FROM work_experience ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query work experience: %w", err)
	}
	defer rows.Close()

	var out []models.WorkExperience
	for rows.Next() {
		var (
			w          models.WorkExperience
			start, end string
		)
		if err := rows.Scan(&w.ID, &w.Company, &w.Title, &start, &end, &w.Link); err != nil {
			return nil, fmt.Errorf("scan work experience: %w", err)
		}
		if w.Start, err = models.ParsePeriod(start); err != nil {
			return nil, fmt.Errorf("work %s: %w", w.ID, err)
		}
		if w.End, err = models.ParsePeriod(end); err != nil {
			return nil, fmt.Errorf("work %s: %w", w.ID, err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Posts returns all blog posts in list order
func (s *SQLStore) Posts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, link FROM posts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var out []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SocialLinks returns all social links in list order
func (s *SQLStore) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, link FROM social_links ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query social links: %w", err)
	}
	defer rows.Close()

	var out []models.SocialLink
	for rows.Next() {
		var sl models.SocialLink
		if err := rows.Scan(&sl.Label, &sl.Link); err != nil {
			return nil, fmt.Errorf("scan social link: %w", err)
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

// Close closes the underlying database
func (s *SQLStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLStore)(nil)
