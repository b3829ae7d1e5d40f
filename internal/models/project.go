package models

import "strings"

// Project represents a portfolio project
type Project struct {
	ID          string `json:"id" yaml:"id" validate:"required,slug"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link" validate:"required,http_url"`
	Video       string `json:"video,omitempty" yaml:"video,omitempty"`
}

// WorkExperience represents a single position in the work history
type WorkExperience struct {
	ID      string `json:"id" yaml:"id" validate:"required,slug"`
	Company string `json:"company" yaml:"company" validate:"required"`
	Title   string `json:"title" yaml:"title" validate:"required"`
	Start   Period `json:"start" yaml:"start"`
	End     Period `json:"end" yaml:"end"`
	Link    string `json:"link" yaml:"link" validate:"required,http_url"`
}

// BlogPost represents an entry on the blog index
type BlogPost struct {
	ID          string `json:"id" yaml:"id" validate:"required,slug"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link" validate:"required,post_link"`
	// Source is empty for posts authored on this site and holds the feed
	// URL for syndicated ones.
	Source string `json:"source,omitempty" yaml:"-"`
}

// External reports whether the post lives on another site
func (p BlogPost) External() bool {
	return p.Source != ""
}

// Slug returns the segment after /blog/ in an internal link, or "" for
// links that point elsewhere or span more than one path segment.
func (p BlogPost) Slug() string {
	slug, ok := strings.CutPrefix(p.Link, "/blog/")
	if !ok {
		return ""
	}
	slug = strings.Trim(slug, "/")
	if slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

// SocialLink represents a labelled link to an external profile
type SocialLink struct {
	Label string `json:"label" yaml:"label" validate:"required"`
	Link  string `json:"link" yaml:"link" validate:"required,url"`
}

// ID returns the correlation id used for rendering social rows
func (s SocialLink) ID() string {
	return Slugify(s.Label)
}
