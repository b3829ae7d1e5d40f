// Package feed writes the blog index as an RSS 2.0 document.
package feed

import (
	"fmt"
	"io"
	"strings"

	"github.com/gorilla/feeds"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// Channel describes the feed itself
type Channel struct {
	Title       string
	Description string
	// BaseURL turns relative post links into absolute ones. Without it
	// relative links are written as they are.
	BaseURL string
}

// ChannelFor builds the channel metadata from the profile
func ChannelFor(p models.Profile, baseURL string) Channel {
	return Channel{
		Title:       p.Name,
		Description: "My thoughts on software development, startups, and technology.",
		BaseURL:     baseURL,
	}
}

// Build converts posts, in order, into a feed. Post ids become non-permalink guids.
func Build(ch Channel, posts []models.BlogPost) *feeds.Feed {
	base := strings.TrimRight(ch.BaseURL, "/")

	f := &feeds.Feed{
		Title:       ch.Title,
		Link:        &feeds.Link{Href: base + "/blog"},
		Description: ch.Description,
		Items:       make([]*feeds.Item, 0, len(posts)),
	}

	for _, p := range posts {
		link := p.Link
		if strings.HasPrefix(link, "/") {
			link = base + link
		}
		f.Add(&feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Id:          p.ID,
			IsPermaLink: "false",
		})
	}

	return f
}

// Write encodes posts as an RSS 2.0 document
func Write(w io.Writer, ch Channel, posts []models.BlogPost) error {
	rss := (&feeds.Rss{Feed: Build(ch, posts)}).RssFeed()
	rss.Language = "en"

	if err := feeds.WriteXML(rss, w); err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}
	return nil
}
