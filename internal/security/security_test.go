package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSanitizerKeepsFormatting(t *testing.T) {
	s := NewPostSanitizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"headings", "<h2>Trello clone</h2>", []string{"<h2>Trello clone</h2>"}},
		{"code", `<pre><code class="language-go">x := 1</code></pre>`, []string{`<code class="language-go">`, "x := 1"}},
		{"lists", "<ul><li>one</li></ul>", []string{"<ul><li>one</li></ul>"}},
		{"relative images", `<img src="/static/img/board.png" alt="board">`, []string{`src="/static/img/board.png"`, `alt="board"`}},
		{"external links", `<a href="https://github.com">gh</a>`, []string{`target="_blank"`, "noreferrer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestPostSanitizerDropsActiveContent(t *testing.T) {
	s := NewPostSanitizer()

	got := s.Sanitize(`<p onclick="x()">hi</p><script>alert(1)</script><iframe src="https://evil"></iframe><a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, got, "onclick")
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "iframe")
	assert.NotContains(t, got, "javascript:")
	assert.Contains(t, got, "<p>hi</p>")
}

func TestStrictSanitizerStripsTags(t *testing.T) {
	assert.Equal(t, "bold", NewStrictSanitizer().Sanitize("<b>bold</b>"))
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"tags removed", "<p>Hello <b>world</b></p>", 0, "Hello world"},
		{"whitespace collapsed", "<p>a\n\n   b</p>\t<p>c</p>", 0, "a b c"},
		{"scripts skipped", "<p>keep</p><script>var x = 1;</script><style>p{}</style>", 0, "keep"},
		{"entities decoded", "<p>Tom &amp; Jerry</p>", 0, "Tom & Jerry"},
		{"truncated", "<p>abcdef ghij</p>", 7, "abcdef…"},
		{"short text untouched", "abc", 10, "abc"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input, tt.max))
		})
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://dev.to/feed/lucasaraujonrt",
		"http://example.com/rss.xml",
	}
	for _, u := range valid {
		assert.NoError(t, ValidateURL(u), u)
	}

	invalid := []string{
		"",
		"ftp://example.com/feed",
		"file:///etc/passwd",
		"https://",
		"http://127.0.0.1/feed",
		"http://169.254.169.254/latest/meta-data",
		"http://10.1.2.3/",
		"http://[::1]/",
		"http://LOCALHOST:8080/",
	}
	for _, u := range invalid {
		assert.Error(t, ValidateURL(u), u)
	}
}

func TestNewSafeClient(t *testing.T) {
	c := NewSafeClient(5 * time.Second)
	require.NotNil(t, c)
	assert.NotNil(t, c.Transport)
}
