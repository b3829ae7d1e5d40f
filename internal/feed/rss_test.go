package feed

import (
	"bytes"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/models"
)

func TestWriteProducesParseableRSS(t *testing.T) {
	c := content.Seed()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ChannelFor(c.Profile, "https://lucasaraujo.dev/"), c.Posts))

	parsed, err := gofeed.NewParser().ParseString(buf.String())
	require.NoError(t, err)

	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "2.0", parsed.FeedVersion)
	assert.Equal(t, "en", parsed.Language)
	assert.Equal(t, c.Profile.Name, parsed.Title)
	assert.Equal(t, "https://lucasaraujo.dev/blog", parsed.Link)
	require.Len(t, parsed.Items, len(c.Posts))
	for i, p := range c.Posts {
		assert.Equal(t, p.Title, parsed.Items[i].Title)
		assert.Equal(t, "https://lucasaraujo.dev"+p.Link, parsed.Items[i].Link)
		assert.Equal(t, p.ID, parsed.Items[i].GUID)
	}
}

func TestWriteKeepsAbsoluteLinks(t *testing.T) {
	posts := []models.BlogPost{
		{ID: "syn-1", Title: "Elsewhere & beyond", Link: "https://dev.to/x", Source: "https://dev.to/feed"},
		{ID: "blog-1", Title: "Here", Link: "/blog/here"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Channel{Title: "t"}, posts))

	parsed, err := gofeed.NewParser().ParseString(buf.String())
	require.NoError(t, err)
	require.Len(t, parsed.Items, 2)
	assert.Equal(t, "https://dev.to/x", parsed.Items[0].Link)
	assert.Equal(t, "Elsewhere & beyond", parsed.Items[0].Title)
	assert.Equal(t, "/blog/here", parsed.Items[1].Link)
}

func TestBuildKeepsPostOrder(t *testing.T) {
	posts := content.Seed().Posts

	f := Build(Channel{Title: "t", BaseURL: "https://lucasaraujo.dev"}, posts)
	require.Len(t, f.Items, len(posts))
	for i, p := range posts {
		assert.Equal(t, p.ID, f.Items[i].Id)
		assert.Equal(t, "false", f.Items[i].IsPermaLink)
	}
	assert.Equal(t, "https://lucasaraujo.dev/blog", f.Link.Href)
}

func TestWriteMarksGUIDsAsNotPermalinks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Channel{Title: "t"}, content.Seed().Posts[:1]))
	assert.Contains(t, buf.String(), `<guid isPermaLink="false">blog-5</guid>`)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Channel{Title: "t"}, nil))

	parsed, err := gofeed.NewParser().ParseString(buf.String())
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
}
