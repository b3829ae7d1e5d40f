package typography

import (
	"errors"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Align is an optional text alignment
type Align string

const (
	AlignNone    Align = ""
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// Valid reports whether a is empty or a known alignment
func (a Align) Valid() bool {
	switch a {
	case AlignNone, AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// Color is a CSS color value such as "white" or "#18181b"
type Color string

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9.,%\s]+\))$`)

// Valid reports whether c is safe to place in a style attribute
func (c Color) Valid() bool {
	return colorPattern.MatchString(string(c))
}

// Text is a run of styled text
type Text struct {
	Variant Variant
	Color   Color
	Align   Align
	Content string
}

// New returns a text element with no alignment
func New(v Variant, c Color, content string) Text {
	return Text{Variant: v, Color: c, Content: content}
}

// Aligned returns a copy of t with the given alignment
func (t Text) Aligned(a Align) Text {
	t.Align = a
	return t
}

// ErrZeroVariant is returned when text is rendered with an undeclared Variant
var ErrZeroVariant = errors.New("typography: text has no variant")

// Validate checks that t resolves to a complete style. An empty color
// inherits from the parent element.
func (t Text) Validate() error {
	if t.Variant.IsZero() {
		return ErrZeroVariant
	}
	if t.Color != "" && !t.Color.Valid() {
		return fmt.Errorf("typography: invalid color %q", string(t.Color))
	}
	if !t.Align.Valid() {
		return fmt.Errorf("typography: invalid alignment %q", string(t.Align))
	}
	return nil
}

// inlineStyle holds the per-element declarations; sizes and fonts come from the stylesheet
func (t Text) inlineStyle() string {
	var decls []string
	if t.Color != "" {
		decls = append(decls, "color:"+string(t.Color))
	}
	if t.Align != AlignNone {
		decls = append(decls, "text-align:"+string(t.Align))
	}
	return strings.Join(decls, ";")
}

// HTML renders t as a label element. Content is escaped.
func (t Text) HTML() (template.HTML, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<label class="typo `)
	b.WriteString(t.Variant.Class())
	b.WriteByte('"')
	if style := t.inlineStyle(); style != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(style))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(html.EscapeString(t.Content))
	b.WriteString(`</label>`)
	return template.HTML(b.String()), nil
}
