package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/lucasaraujonrt/portfolio/internal/config"
	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/metrics"
	"github.com/lucasaraujonrt/portfolio/internal/security"
	"github.com/lucasaraujonrt/portfolio/internal/services"
	"github.com/lucasaraujonrt/portfolio/internal/syndication"
)

// appContext bundles the long-lived services every command starts from
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	store   content.Store
	content *services.ContentService
	posts   *services.PostService
	syncer  *syndication.Syncer
}

// newAppContext loads the config, opens the content store and wires the
// services. rec may be nil. Callers must Close the result.
func newAppContext(ctx context.Context, flags *rootFlags, logOut io.Writer, rec metrics.Recorder) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.Log, flags.verbose, logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := content.Open(ctx, content.Options{
		Kind:        content.Kind(cfg.Content.Store),
		File:        cfg.Content.File,
		SQLitePath:  cfg.Database.SQLitePath,
		DatabaseURL: cfg.Database.URL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open content store: %w", err)
	}

	app := &appContext{cfg: cfg, log: log, store: store}

	var source services.PostSource
	if len(cfg.Syndication.Feeds) > 0 {
		fetcher := syndication.NewFetcher(security.NewSafeClient(cfg.Syndication.Timeout), cfg.Syndication.MaxSize)
		app.syncer = syndication.NewSyncer(fetcher, cfg.Syndication.Feeds, cfg.Syndication.MaxPosts, log, rec)
		source = app.syncer
	}

	app.content = services.NewContentService(store, source)
	app.posts = services.NewPostService(postBodies(cfg.Content.PostsDir), security.NewPostSanitizer())

	log.WithFields(map[string]any{
		"store": cfg.Content.Store,
		"feeds": len(cfg.Syndication.Feeds),
	}).Debug("application initialized")

	return app, nil
}

// Close releases the content store
func (a *appContext) Close() error {
	return a.store.Close()
}

// checkContent refuses content with duplicate ids unless the config allows it
func (a *appContext) checkContent(ctx context.Context) error {
	c, err := content.Snapshot(ctx, a.store)
	if err != nil {
		return err
	}
	if err := content.CheckUniqueIDs(c); err != nil {
		if !a.cfg.Content.AllowDuplicateIDs {
			return fmt.Errorf("%w (set content.allow_duplicate_ids to start anyway)", err)
		}
		a.log.Warn(err.Error())
	}
	return nil
}

func postBodies(dir string) fs.FS {
	if dir == "" {
		return content.PostBodies()
	}
	return os.DirFS(dir)
}

func newLogger(cfg config.LogConfig, verbose bool, out io.Writer) (*logger.Logger, error) {
	level := cfg.Level
	if verbose {
		level = "debug"
	}

	human := cfg.Format == "console" || (cfg.Format == "auto" && logger.IsTerminal(out))

	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: human,
		Writer:        out,
	})
}
