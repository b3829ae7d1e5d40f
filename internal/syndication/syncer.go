package syndication

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lucasaraujonrt/portfolio/internal/logger"
	"github.com/lucasaraujonrt/portfolio/internal/metrics"
	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// FeedFetcher is implemented by Fetcher
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string, limit int) ([]models.BlogPost, error)
}

// Syncer keeps the latest posts of every configured feed in memory. A feed
// that fails to refresh keeps serving what it had.
type Syncer struct {
	fetcher  FeedFetcher
	feeds    []string
	maxPosts int
	log      *logger.Logger
	metrics  metrics.Recorder

	mu    sync.RWMutex
	posts map[string][]models.BlogPost
}

// NewSyncer creates a Syncer over feeds, keeping at most maxPosts per feed
func NewSyncer(fetcher FeedFetcher, feeds []string, maxPosts int, log *logger.Logger, rec metrics.Recorder) *Syncer {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Syncer{
		fetcher:  fetcher,
		feeds:    append([]string(nil), feeds...),
		maxPosts: maxPosts,
		log:      log,
		metrics:  rec,
		posts:    make(map[string][]models.BlogPost),
	}
}

// Refresh fetches every feed once. Failures are logged and joined into the
// returned error; successful feeds are updated regardless.
func (s *Syncer) Refresh(ctx context.Context) error {
	var errs []error

	for _, feed := range s.feeds {
		start := time.Now()
		posts, err := s.fetcher.Fetch(ctx, feed, s.maxPosts)
		s.metrics.RecordFeedFetch(feed, err)

		if err != nil {
			s.log.WithFields(map[string]any{"feed": feed}).Error(err, "syndication fetch failed")
			errs = append(errs, err)
			continue
		}

		s.mu.Lock()
		s.posts[feed] = posts
		s.mu.Unlock()

		s.log.WithFields(map[string]any{
			"feed":        feed,
			"posts":       len(posts),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("syndicated feed refreshed")
	}

	s.metrics.SetSyndicatedPosts(len(s.Posts()))
	return errors.Join(errs...)
}

// Run refreshes immediately and then every interval until ctx is done
func (s *Syncer) Run(ctx context.Context, interval time.Duration) {
	if len(s.feeds) == 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.WithFields(map[string]any{"feeds": len(s.feeds), "interval": interval.String()}).Info("syndication started")
	_ = s.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("syndication stopped")
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

// Posts returns the imported posts in feed configuration order. Posts that
// appear in more than one feed are listed once.
func (s *Syncer) Posts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []models.BlogPost
	for _, feed := range s.feeds {
		for _, p := range s.posts[feed] {
			if seen[p.Link] {
				continue
			}
			seen[p.Link] = true
			out = append(out, p)
		}
	}
	return out
}
