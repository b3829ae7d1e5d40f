// Package views renders the site's pages from embedded templates.
//
// Every list is rendered through the "rows" template: one element per entry,
// in list order, tagged with data-id so the highlight script can follow
// hover and focus.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/lucasaraujonrt/portfolio/internal/typography"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Options tweaks rendering
type Options struct {
	// Track adds data-go attributes so clicks on project, work and social
	// rows are reported to /go. Static exports leave it off.
	Track bool
}

// Renderer executes page templates against a theme
type Renderer struct {
	theme      typography.Theme
	opts       Options
	pages      map[string]*template.Template
	stylesheet string
}

// New parses every template. The theme is validated here so a bad color
// fails at startup rather than on the first request.
func New(theme typography.Theme, opts Options) (*Renderer, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}

	base, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFiles, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageHome, PageAbout, PageBlog, PagePost, PageNotFound} {
		t, err := template.Must(base.Clone()).ParseFS(templateFiles, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{
		theme:      theme,
		opts:       opts,
		pages:      pages,
		stylesheet: theme.Stylesheet(),
	}, nil
}

// Render writes the full HTML document for page. Nothing is written when
// execution fails.
func (r *Renderer) Render(w io.Writer, page Page) error {
	t, ok := r.pages[page.Name]
	if !ok {
		return fmt.Errorf("unknown page %q", page.Name)
	}

	page.Theme = r.theme
	for _, l := range []*RowList{&page.Projects, &page.Work, &page.Posts, &page.Social} {
		l.Track = r.opts.Track
		if err := l.validate(); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", page.Name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderRows writes a single list container
func (r *Renderer) RenderRows(w io.Writer, list RowList) error {
	list.Track = r.opts.Track
	if err := list.validate(); err != nil {
		return err
	}
	return r.pages[PageHome].ExecuteTemplate(w, "rows", list)
}

// Stylesheet returns the CSS generated from the theme
func (r *Renderer) Stylesheet() string {
	return r.stylesheet
}

// Static returns the embedded assets served under /static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"typo": func(size, font string, color typography.Color, content string) (template.HTML, error) {
			v, err := typography.ParseVariant(size, font)
			if err != nil {
				return "", err
			}
			return typography.New(v, color, content).HTML()
		},
		"typoAlign": func(size, font string, color typography.Color, align typography.Align, content string) (template.HTML, error) {
			v, err := typography.ParseVariant(size, font)
			if err != nil {
				return "", err
			}
			return typography.New(v, color, content).Aligned(align).HTML()
		},
	}
}
