package services

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/security"
)

type staticPosts []models.BlogPost

func (s staticPosts) Posts() []models.BlogPost { return s }

func newContentService(syn PostSource) *ContentService {
	return NewContentService(content.NewMemoryStore(content.Seed()), syn)
}

func TestGetProject(t *testing.T) {
	s := newContentService(nil)
	ctx := context.Background()

	p, err := s.GetProject(ctx, "project2")
	require.NoError(t, err)
	assert.Equal(t, "Ink-er", p.Name)

	_, err = s.GetProject(ctx, "nope")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestWorkIsSortedByStart(t *testing.T) {
	s := newContentService(nil)

	work, err := s.Work(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, w := range work {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"work2", "work1", "work3", "work4", "work5"}, ids)

	w, err := s.GetWork(context.Background(), "work4")
	require.NoError(t, err)
	assert.Equal(t, "CI&T", w.Company)
}

func TestPostsIncludeSyndicated(t *testing.T) {
	syn := staticPosts{{ID: "syn-1", Title: "Elsewhere", Link: "https://dev.to/x", Source: "https://dev.to/feed"}}
	s := newContentService(syn)
	ctx := context.Background()

	posts, err := s.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	assert.Equal(t, "blog-5", posts[0].ID)
	assert.Equal(t, "syn-1", posts[4].ID)

	p, err := s.GetPost(ctx, "syn-1")
	require.NoError(t, err)
	assert.True(t, p.External())

	c, err := s.Content(ctx)
	require.NoError(t, err)
	assert.Len(t, c.Posts, 5)
	assert.Equal(t, "work2", c.Work[0].ID)
}

func TestGetPostBySlug(t *testing.T) {
	s := newContentService(staticPosts{{ID: "syn-1", Link: "https://dev.to/trello"}})
	ctx := context.Background()

	p, err := s.GetPostBySlug(ctx, "trello")
	require.NoError(t, err)
	assert.Equal(t, "blog-5", p.ID)
	assert.Equal(t, "/blog/trello", p.Link)

	_, err = s.GetPostBySlug(ctx, "missing")
	assert.True(t, errors.Is(err, content.ErrNotFound))

	_, err = s.GetPostBySlug(ctx, "")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestSocialLinksAndEmail(t *testing.T) {
	s := newContentService(nil)
	ctx := context.Background()

	l, err := s.GetSocialLink(ctx, "github")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/lucasaraujonrt", l.Link)

	_, err = s.GetSocialLink(ctx, "myspace")
	assert.True(t, errors.Is(err, content.ErrNotFound))

	email, err := s.Email(ctx)
	require.NoError(t, err)
	assert.Equal(t, content.Seed().Profile.Email, email)
}

func TestCheckFlagsDuplicates(t *testing.T) {
	c := content.Seed()
	c.Posts[1].ID = c.Posts[0].ID

	s := NewContentService(content.NewMemoryStore(c), nil)
	err := s.Check(context.Background())

	var dup *content.DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, []string{"blog-5"}, dup.IDs)

	assert.NoError(t, newContentService(nil).Check(context.Background()))
}

func TestPostBodyIsSanitizedAndCached(t *testing.T) {
	fsys := fstest.MapFS{
		"trello.html": {Data: []byte(`<h2>Boards</h2><script>alert(1)</script>`)},
	}
	s := NewPostService(fsys, security.NewPostSanitizer())

	body, err := s.Body("trello")
	require.NoError(t, err)
	assert.Equal(t, "<h2>Boards</h2>", string(body))

	fsys["trello.html"] = &fstest.MapFile{Data: []byte("<p>changed</p>")}
	body, err = s.Body("trello")
	require.NoError(t, err)
	assert.Equal(t, "<h2>Boards</h2>", string(body), "served from cache")

	s.Reset()
	body, err = s.Body("trello")
	require.NoError(t, err)
	assert.Equal(t, "<p>changed</p>", string(body))
}

func TestPostBodyNotFound(t *testing.T) {
	s := NewPostService(fstest.MapFS{}, security.NewPostSanitizer())

	for _, slug := range []string{"discord", "", "../etc/passwd", "a/b"} {
		_, err := s.Body(slug)
		assert.True(t, errors.Is(err, content.ErrNotFound), slug)
	}

	_, err := NewPostService(nil, security.NewPostSanitizer()).Body("trello")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}
