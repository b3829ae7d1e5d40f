package typography

import (
	"fmt"
	"strings"
)

// DefaultFontImport loads JetBrains Mono in the weights the fonts table uses
const DefaultFontImport = "https://fonts.googleapis.com/css2?family=JetBrains+Mono:wght@400;500;600;700&display=swap"

// Theme carries the site-wide presentation settings. It is built once and
// handed to the view layer; nothing is registered globally.
type Theme struct {
	FontImport string
	Background Color
	Surface    Color
	Text       Color
	Muted      Color
	Accent     Color
	Highlight  Color
}

// DefaultTheme returns the dark introduction palette with light content sections
func DefaultTheme() Theme {
	return Theme{
		FontImport: DefaultFontImport,
		Background: "#18181b",
		Surface:    "#ffffff",
		Text:       "#fafafa",
		Muted:      "#71717a",
		Accent:     "#a855f7",
		Highlight:  "#f4f4f5",
	}
}

// Validate rejects colors that aren't safe to emit into CSS
func (t Theme) Validate() error {
	colors := map[string]Color{
		"background": t.Background,
		"surface":    t.Surface,
		"text":       t.Text,
		"muted":      t.Muted,
		"accent":     t.Accent,
		"highlight":  t.Highlight,
	}
	for name, c := range colors {
		if !c.Valid() {
			return fmt.Errorf("theme %s: invalid color %q", name, c)
		}
	}
	if strings.ContainsAny(t.FontImport, "'\"()") {
		return fmt.Errorf("theme font import: invalid url %q", t.FontImport)
	}
	return nil
}

// Stylesheet renders the site CSS, including one class per typography variant
func (t Theme) Stylesheet() string {
	var b strings.Builder

	if t.FontImport != "" {
		fmt.Fprintf(&b, "@import url('%s');\n\n", t.FontImport)
	}

	fmt.Fprintf(&b, `* { margin: 0; padding: 0; box-sizing: border-box; }
a { color: inherit; text-decoration: none; }
body { background: %s; color: %s; font-family: 'JetBrains Mono', monospace; }
.intro { background: %s; color: %s; min-height: 90vh; display: flex; flex-direction: column; }
.nav { height: 100px; display: flex; align-items: center; justify-content: space-around; }
.intro-body { display: flex; justify-content: center; align-items: center; min-height: 450px; gap: 4rem; }
.intro-text { width: 40%%; display: flex; flex-direction: column; gap: 10px; }
.section { background: %s; color: #000; padding: 4rem 1rem; }
.section-inner { max-width: 640px; margin: 0 auto; display: flex; flex-direction: column; gap: 2rem; }
.avatar { width: 160px; height: 160px; border-radius: 50%%; border: 4px solid %s; }
.nav-links { display: flex; gap: 2rem; }
.about-card { display: flex; flex-direction: column; align-items: center; gap: 1rem; }
.avatar-ring { padding: 8px; border-radius: 50%%; border: 2px solid %s; }
.social .highlight-group { flex-direction: row; flex-wrap: wrap; justify-content: center; }
.muted { color: %s; }
.typo { display: inline-block; }
.blog-title { font-size: 1.125rem; font-weight: 500; }
.blog-header { display: flex; flex-direction: column; gap: 1rem; }
.post-body { line-height: 1.7; display: flex; flex-direction: column; gap: 1rem; }
.post-body pre { background: %s; color: %s; padding: 1rem; border-radius: 8px; overflow-x: auto; }
.back { color: %s; }
.row-title { font-weight: 400; }
.row-subtitle, .row-meta { font-size: 0.9rem; }
`,
		t.Background, t.Text,
		t.Background, t.Text,
		t.Surface,
		t.Accent,
		t.Accent,
		t.Muted,
		t.Background, t.Text,
		t.Accent,
	)

	for _, v := range Variants() {
		s := v.Style()
		fmt.Fprintf(&b, ".%s { font-family: '%s'; font-size: %s; font-weight: %d; }\n",
			v.Class(), s.FontFamily, s.FontSize, s.FontWeight)
	}

	fmt.Fprintf(&b, `
.highlight-group { position: relative; display: flex; flex-direction: column; }
.highlight-bg { position: absolute; left: 0; top: 0; border-radius: 12px; background: %s; opacity: 0; pointer-events: none; z-index: 0; transition: transform 0.25s ease, width 0.25s ease, height 0.25s ease, opacity 0.2s ease; }
.highlight-bg.active { opacity: 1; }
.row { position: relative; z-index: 1; display: block; padding: 12px; border-radius: 12px; }
.row:focus { outline: none; }
`, t.Highlight)

	return b.String()
}
