package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasaraujonrt/portfolio/internal/typography"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "memory", cfg.Content.Store)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, typography.DefaultTheme(), cfg.Theme.Theme())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  base_url: https://lucasaraujo.dev
  read_timeout: 5s
log:
  level: debug
content:
  store: sqlite
  posts_dir: posts
rate_limit:
  rps: 2.5
  burst: 5
syndication:
  feeds:
    - https://dev.to/feed/lucasaraujonrt
  interval: 1h
theme:
  accent: "#22c55e"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "https://lucasaraujo.dev", cfg.Server.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Content.Store)
	assert.Equal(t, "posts", cfg.Content.PostsDir)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://dev.to/feed/lucasaraujonrt"}, cfg.Syndication.Feeds)
	assert.Equal(t, time.Hour, cfg.Syndication.Interval)
	assert.Equal(t, typography.Color("#22c55e"), cfg.Theme.Theme().Accent)
	assert.Equal(t, typography.Color("#18181b"), cfg.Theme.Theme().Background)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9000\"\n")

	t.Setenv("PORTFOLIO_ADDR", ":7000")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "WARN")
	t.Setenv("PORTFOLIO_STORE", "postgres")
	t.Setenv("PORTFOLIO_DATABASE_URL", "postgres://localhost/portfolio?sslmode=disable")
	t.Setenv("PORTFOLIO_POSTS_DIR", "/srv/posts")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "postgres", cfg.Content.Store)
	assert.Equal(t, "postgres://localhost/portfolio?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "/srv/posts", cfg.Content.PostsDir)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"unknown store", "content:\n  store: redis\n", "content.store"},
		{"unknown level", "log:\n  level: loud\n", "log.level"},
		{"negative rps", "rate_limit:\n  rps: -1\n", "rate_limit.rps"},
		{"bad feed url", "syndication:\n  feeds: [\"not a url\"]\n", "syndication.feeds[0]"},
		{"bad color", "theme:\n  accent: \"red;}\"\n", "theme.accent"},
		{"postgres without url", "content:\n  store: postgres\n", "database.url"},
		{"feeds without interval", "syndication:\n  feeds: [\"https://dev.to/feed\"]\n  interval: 0s\n", "syndication.interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %T: %v", err, err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
