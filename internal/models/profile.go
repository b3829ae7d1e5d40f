package models

import (
	"strings"
	"unicode"
)

// Profile holds the personal details shown on the introduction and about pages
type Profile struct {
	Name      string   `json:"name" yaml:"name" validate:"required"`
	Handle    string   `json:"handle" yaml:"handle" validate:"required"`
	Headline  string   `json:"headline" yaml:"headline"`
	Subtitle  string   `json:"subtitle" yaml:"subtitle"`
	Taglines  []string `json:"taglines" yaml:"taglines"`
	Email     string   `json:"email" yaml:"email" validate:"required,email"`
	Avatar    string   `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Animation string   `json:"animation,omitempty" yaml:"animation,omitempty"`
	// HandleLink is where the handle in the navigation bar points to
	HandleLink string `json:"handle_link,omitempty" yaml:"handle_link,omitempty" validate:"omitempty,http_url"`
}

// Content is the full set of display data for the site
type Content struct {
	Profile     Profile          `json:"profile" yaml:"profile"`
	Projects    []Project        `json:"projects" yaml:"projects" validate:"dive"`
	Work        []WorkExperience `json:"work" yaml:"work" validate:"dive"`
	Posts       []BlogPost       `json:"posts" yaml:"posts" validate:"dive"`
	SocialLinks []SocialLink     `json:"social_links" yaml:"social_links" validate:"dive"`
}

// Clone returns a deep copy so callers can't mutate shared slices
func (c Content) Clone() Content {
	out := Content{
		Profile:     c.Profile,
		Projects:    append([]Project(nil), c.Projects...),
		Work:        append([]WorkExperience(nil), c.Work...),
		Posts:       append([]BlogPost(nil), c.Posts...),
		SocialLinks: append([]SocialLink(nil), c.SocialLinks...),
	}
	out.Profile.Taglines = append([]string(nil), c.Profile.Taglines...)
	return out
}

// Slugify lowercases s and joins its alphanumeric runs with dashes
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
