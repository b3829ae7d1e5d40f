// Package export writes the site as static files so it can be hosted
// without the server.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/feed"
	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/services"
	"github.com/lucasaraujonrt/portfolio/internal/typography"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

// Exporter renders every page and API response into a directory
type Exporter struct {
	content  *services.ContentService
	posts    *services.PostService
	renderer *views.Renderer
	baseURL  string
	log      *logger.Logger
}

// NewExporter creates an Exporter. The renderer should be built without
// tracking, since /go does not exist on a static host.
func NewExporter(cs *services.ContentService, ps *services.PostService, renderer *views.Renderer, baseURL string, log *logger.Logger) *Exporter {
	return &Exporter{content: cs, posts: ps, renderer: renderer, baseURL: baseURL, log: log}
}

// Export writes the site under dir and returns the written paths, relative
// to dir, in write order
func (e *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	c, err := e.content.Content(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	w := &writer{dir: dir}

	pages := []struct {
		name string
		page views.Page
	}{
		{"index.html", views.HomePage(c)},
		{"about/index.html", views.AboutPage(c)},
		{"blog/index.html", views.BlogPage(c)},
		{"404.html", views.NotFoundPage(c.Profile)},
	}
	for _, p := range pages {
		if err := e.writePage(w, p.name, p.page); err != nil {
			return w.files, err
		}
	}

	for _, post := range c.Posts {
		slug := post.Slug()
		if slug == "" {
			continue
		}
		body, err := e.posts.Body(slug)
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			return w.files, err
		}
		if err := e.writePage(w, path.Join("blog", slug, "index.html"), views.PostPage(c.Profile, post, body)); err != nil {
			return w.files, err
		}
	}

	var rss bytes.Buffer
	if err := feed.Write(&rss, feed.ChannelFor(c.Profile, e.baseURL), c.Posts); err != nil {
		return w.files, err
	}
	if err := w.write("feed.xml", rss.Bytes()); err != nil {
		return w.files, err
	}

	if err := w.write("static/site.css", []byte(e.renderer.Stylesheet())); err != nil {
		return w.files, err
	}
	if err := w.copyFS("static", views.Static()); err != nil {
		return w.files, err
	}

	social := make([]map[string]string, len(c.SocialLinks))
	for i, l := range c.SocialLinks {
		social[i] = map[string]string{"id": l.ID(), "label": l.Label, "link": l.Link}
	}
	api := []struct {
		name string
		v    any
	}{
		{"api/profile.json", c.Profile},
		{"api/projects.json", c.Projects},
		{"api/work.json", c.Work},
		{"api/posts.json", c.Posts},
		{"api/social.json", social},
		{"api/typography.json", typography.Table()},
	}
	for _, a := range api {
		data, err := json.MarshalIndent(a.v, "", "  ")
		if err != nil {
			return w.files, fmt.Errorf("failed to encode %s: %w", a.name, err)
		}
		if err := w.write(a.name, data); err != nil {
			return w.files, err
		}
	}

	e.log.WithFields(map[string]any{"dir": dir, "files": len(w.files)}).Info("site exported")
	return w.files, nil
}

func (e *Exporter) writePage(w *writer, name string, page views.Page) error {
	var buf bytes.Buffer
	if err := e.renderer.Render(&buf, page); err != nil {
		return err
	}
	return w.write(name, buf.Bytes())
}

type writer struct {
	dir   string
	files []string
}

func (w *writer) write(name string, data []byte) error {
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return fmt.Errorf("refusing to write %s outside the output directory", name)
	}
	full := filepath.Join(w.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	w.files = append(w.files, name)
	return nil
}

func (w *writer) copyFS(prefix string, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		return w.write(path.Join(prefix, p), data)
	})
}
