package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/lucasaraujonrt/portfolio/internal/handlers"
	"github.com/lucasaraujonrt/portfolio/internal/metrics"
	"github.com/lucasaraujonrt/portfolio/internal/middleware"
	"github.com/lucasaraujonrt/portfolio/internal/views"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(ctx context.Context, flags *rootFlags, addr string) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewCollector(reg)

	app, err := newAppContext(ctx, flags, os.Stderr, rec)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.checkContent(ctx); err != nil {
		return err
	}

	cfg := app.cfg
	if addr == "" {
		addr = cfg.Server.Addr
	}

	renderer, err := views.New(cfg.Theme.Theme(), views.Options{Track: true})
	if err != nil {
		return err
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
		}, app.log)
		defer limiter.Stop()
	}

	if app.syncer != nil {
		go app.syncer.Run(ctx, cfg.Syndication.Interval)
	}

	srv := &http.Server{
		Addr: addr,
		Handler: handlers.SetupRoutes(handlers.Deps{
			Content:     app.content,
			Posts:       app.posts,
			Renderer:    renderer,
			Metrics:     rec,
			Gatherer:    reg,
			Logger:      app.log,
			RateLimiter: limiter,
			BaseURL:     cfg.Server.BaseURL,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		app.log.WithFields(map[string]any{"addr": addr}).Info("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	app.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
