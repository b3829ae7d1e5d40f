// Package security sanitizes markup that ends up on rendered pages and guards
// outbound requests made on the server's behalf.
package security

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Sanitizer cleans HTML before it is rendered
type Sanitizer interface {
	Sanitize(rawHTML string) string
}

type policySanitizer struct {
	policy *bluemonday.Policy
}

// NewPostSanitizer returns the policy for post bodies authored on this site.
// Headings, lists, code blocks, tables and images are kept; scripts, styles
// and event handlers are dropped. External links open in a new tab.
func NewPostSanitizer() Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")

	return &policySanitizer{policy: p}
}

// NewStrictSanitizer returns a policy that strips every tag
func NewStrictSanitizer() Sanitizer {
	return &policySanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize applies the policy. It is safe for concurrent use.
func (s *policySanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}

// PlainText extracts the visible text of an HTML fragment, collapsing
// whitespace. Text is cut at max runes with an ellipsis; max <= 0 keeps it all.
func PlainText(fragment string, max int) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(bytes.NewReader([]byte(fragment)))
	skip := 0

loop:
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			break loop
		case html.StartTagToken:
			if tn, _ := tokenizer.TagName(); isHidden(string(tn)) {
				skip++
			}
		case html.EndTagToken:
			if tn, _ := tokenizer.TagName(); isHidden(string(tn)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}

	text := strings.Join(strings.Fields(b.String()), " ")
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}

	runes := []rune(text)
	return strings.TrimRight(string(runes[:max]), " ") + "…"
}

func isHidden(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template":
		return true
	}
	return false
}
