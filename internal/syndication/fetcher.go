// Package syndication imports posts published elsewhere (dev.to, Medium and
// the like) so they appear on the blog next to the ones hosted here.
package syndication

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/security"
)

// IDPrefix marks posts that came from an external feed
const IDPrefix = "syn-"

// DescriptionLength caps imported descriptions, in runes
const DescriptionLength = 200

// Fetcher downloads and converts one feed
type Fetcher struct {
	client   *http.Client
	maxSize  int64
	validate func(string) error
}

// NewFetcher returns a Fetcher using client, which should come from
// security.NewSafeClient. Bodies larger than maxSize bytes are truncated.
func NewFetcher(client *http.Client, maxSize int64) *Fetcher {
	if maxSize <= 0 {
		maxSize = 5 << 20
	}
	return &Fetcher{
		client:   client,
		maxSize:  maxSize,
		validate: security.ValidateURL,
	}
}

// Fetch returns up to limit posts from the feed at feedURL, in feed order.
// A limit <= 0 returns every item.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, limit int) ([]models.BlogPost, error) {
	if err := f.validate(feedURL); err != nil {
		return nil, fmt.Errorf("refusing to fetch %s: %w", feedURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "portfolio-syndication/1.0")
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", feedURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", feedURL, err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", feedURL, err)
	}

	return convertItems(feedURL, feed.Items, limit), nil
}

// convertItems skips items without a title or an http(s) link
func convertItems(feedURL string, items []*gofeed.Item, limit int) []models.BlogPost {
	posts := make([]models.BlogPost, 0, len(items))

	for _, item := range items {
		if limit > 0 && len(posts) == limit {
			break
		}
		if item == nil {
			continue
		}

		link := item.Link
		if link == "" && isHTTP(item.GUID) {
			link = item.GUID
		}
		title := security.PlainText(item.Title, 0)
		if title == "" || !isHTTP(link) {
			continue
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		key := item.GUID
		if key == "" {
			key = link
		}

		posts = append(posts, models.BlogPost{
			ID:          PostID(feedURL, key),
			Title:       title,
			Description: security.PlainText(summary, DescriptionLength),
			Link:        link,
			Source:      feedURL,
		})
	}

	return posts
}

// PostID derives a stable id from the feed and the item's guid, so
// refreshing a feed doesn't change the ids of posts already shown.
func PostID(feedURL, guid string) string {
	return IDPrefix + uuid.NewSHA1(uuid.NameSpaceURL, []byte(feedURL+"#"+guid)).String()
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
