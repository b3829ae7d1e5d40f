// Package metrics exposes Prometheus metrics for page views, outbound
// navigation, request latency and feed syndication.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers, middleware and the syndication worker report to
type Recorder interface {
	RecordPageView(page string)
	RecordNavigation(kind, id string)
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordFeedFetch(feed string, err error)
	SetSyndicatedPosts(n int)
}

// Collector records metrics into a Prometheus registry
type Collector struct {
	pageViews       *prometheus.CounterVec
	navigations     *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	feedFetches     *prometheus.CounterVec
	syndicatedPosts prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Rendered pages by page name",
		}, []string{"page"}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_navigations_total",
			Help: "Outbound navigations through /go by row kind and id",
		}, []string{"kind", "id"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		feedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_syndication_fetches_total",
			Help: "Syndicated feed fetches by feed and result",
		}, []string{"feed", "result"}),
		syndicatedPosts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_syndicated_posts",
			Help: "Posts currently imported from external feeds",
		}),
	}

	reg.MustRegister(
		c.pageViews,
		c.navigations,
		c.requests,
		c.requestDuration,
		c.feedFetches,
		c.syndicatedPosts,
	)

	return c
}

// RecordPageView counts a rendered page
func (c *Collector) RecordPageView(page string) {
	c.pageViews.WithLabelValues(page).Inc()
}

// RecordNavigation counts a redirect to an external link
func (c *Collector) RecordNavigation(kind, id string) {
	c.navigations.WithLabelValues(kind, id).Inc()
}

// RecordRequest records a finished HTTP request
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordFeedFetch records one syndication fetch
func (c *Collector) RecordFeedFetch(feed string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.feedFetches.WithLabelValues(feed, result).Inc()
}

// SetSyndicatedPosts sets the number of imported posts
func (c *Collector) SetSyndicatedPosts(n int) {
	c.syndicatedPosts.Set(float64(n))
}

// Handler returns the scrape endpoint for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything
type Nop struct{}

func (Nop) RecordPageView(string) {}
func (Nop) RecordNavigation(string, string) {}
func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordFeedFetch(string, error) {}
func (Nop) SetSyndicatedPosts(int) {}

var (
	_ Recorder = (*Collector)(nil)
	_ Recorder = Nop{}
)
