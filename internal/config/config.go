package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lucasaraujonrt/portfolio/internal/typography"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Content     ContentConfig     `yaml:"content"`
	Database    DatabaseConfig    `yaml:"database"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Syndication SyndicationConfig `yaml:"syndication"`
	Theme       ThemeConfig       `yaml:"theme"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	BaseURL         string        `yaml:"base_url" validate:"omitempty,http_url"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto json console"`
}

// ContentConfig selects where content comes from
type ContentConfig struct {
	Store             string `yaml:"store" validate:"oneof=memory sqlite postgres"`
	File              string `yaml:"file"`
	PostsDir          string `yaml:"posts_dir"`
	AllowDuplicateIDs bool   `yaml:"allow_duplicate_ids"`
}

// DatabaseConfig holds connection settings for the SQL stores
type DatabaseConfig struct {
	URL        string `yaml:"url"`
	SQLitePath string `yaml:"sqlite_path"`
}

// RateLimitConfig limits requests per client IP. A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

// SyndicationConfig lists external feeds whose items are shown on the blog
type SyndicationConfig struct {
	Feeds    []string      `yaml:"feeds" validate:"dive,http_url"`
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
	Timeout  time.Duration `yaml:"timeout" validate:"gte=0"`
	MaxSize  int64         `yaml:"max_size" validate:"gte=0"`
	MaxPosts int           `yaml:"max_posts" validate:"gte=0"`
}

// ThemeConfig holds color scheme settings
type ThemeConfig struct {
	FontImport string `yaml:"font_import" validate:"omitempty,url"`
	Background string `yaml:"background" validate:"css_color"`
	Surface    string `yaml:"surface" validate:"css_color"`
	Text       string `yaml:"text" validate:"css_color"`
	Muted      string `yaml:"muted" validate:"css_color"`
	Accent     string `yaml:"accent" validate:"css_color"`
	Highlight  string `yaml:"highlight" validate:"css_color"`
}

// Theme converts the settings into the view layer's theme
func (t ThemeConfig) Theme() typography.Theme {
	return typography.Theme{
		FontImport: t.FontImport,
		Background: typography.Color(t.Background),
		Surface:    typography.Color(t.Surface),
		Text:       typography.Color(t.Text),
		Muted:      typography.Color(t.Muted),
		Accent:     typography.Color(t.Accent),
		Highlight:  typography.Color(t.Highlight),
	}
}

// ValidationError describes the first invalid setting
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
	}
	return "invalid config: " + e.Message
}

// Unwrap exposes the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no file is given
func Default() *Config {
	theme := typography.DefaultTheme()

	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Content: ContentConfig{
			Store: "memory",
		},
		Database: DatabaseConfig{
			SQLitePath: "data/portfolio.db",
		},
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 20,
		},
		Syndication: SyndicationConfig{
			Interval: 30 * time.Minute,
			Timeout:  10 * time.Second,
			MaxSize:  5 << 20,
			MaxPosts: 10,
		},
		Theme: ThemeConfig{
			FontImport: theme.FontImport,
			Background: string(theme.Background),
			Surface:    string(theme.Surface),
			Text:       string(theme.Text),
			Muted:      string(theme.Muted),
			Accent:     string(theme.Accent),
			Highlight:  string(theme.Highlight),
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file settings with PORTFOLIO_* variables
func (c *Config) applyEnv() {
	c.Server.Addr = getEnvString("PORTFOLIO_ADDR", c.Server.Addr)
	c.Server.BaseURL = getEnvString("PORTFOLIO_BASE_URL", c.Server.BaseURL)
	c.Log.Level = strings.ToLower(getEnvString("PORTFOLIO_LOG_LEVEL", c.Log.Level))
	c.Log.Format = getEnvString("PORTFOLIO_LOG_FORMAT", c.Log.Format)
	c.Content.Store = getEnvString("PORTFOLIO_STORE", c.Content.Store)
	c.Content.File = getEnvString("PORTFOLIO_CONTENT_FILE", c.Content.File)
	c.Content.PostsDir = getEnvString("PORTFOLIO_POSTS_DIR", c.Content.PostsDir)
	c.Database.URL = getEnvString("PORTFOLIO_DATABASE_URL", c.Database.URL)
	c.Database.SQLitePath = getEnvString("PORTFOLIO_SQLITE_PATH", c.Database.SQLitePath)
}

// Validate checks struct rules and the settings that depend on each other
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	switch c.Content.Store {
	case "postgres":
		if c.Database.URL == "" {
			return &ValidationError{Field: "database.url", Message: "required when content.store is postgres"}
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return &ValidationError{Field: "database.sqlite_path", Message: "required when content.store is sqlite"}
		}
	}

	if len(c.Syndication.Feeds) > 0 && c.Syndication.Interval == 0 {
		return &ValidationError{Field: "syndication.interval", Message: "must be set when feeds are configured"}
	}

	if err := c.Theme.Theme().Validate(); err != nil {
		return &ValidationError{Field: "theme", Message: err.Error(), Err: err}
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlFieldName(fe)
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("failed validation for tag '%s' (value %v)", fe.Tag(), fe.Value()),
			Err:     err,
		}
	}
	return &ValidationError{Message: err.Error(), Err: err}
}

// yamlFieldName turns "Config.RateLimit.RPS" into "rate_limit.rps"
func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
