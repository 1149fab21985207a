package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/resolver"
	"github.com/wadjakorntonsri/go-link-hub/pkg/metrics"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

// settings holds the collaborators shared by HubService and LinkService.
type settings struct {
	logger   *slog.Logger
	now      func() time.Time
	cache    ports.SnapshotCache
	metrics  *metrics.Metrics
	resolver *resolver.Resolver
	ipSalt   string
}

type Option func(s *settings)

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithClock replaces time.Now. Public resolution uses it when a request
// carries no explicit time.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

func WithSnapshotCache(c ports.SnapshotCache) Option {
	return func(s *settings) {
		s.cache = c
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithResolver overrides the resolver built from the logger and metrics.
func WithResolver(r *resolver.Resolver) Option {
	return func(s *settings) {
		s.resolver = r
	}
}

// WithIPHashSalt sets the salt mixed into visitor IP hashes.
func WithIPHashSalt(salt string) Option {
	return func(s *settings) {
		s.ipSalt = salt
	}
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.resolver == nil {
		s.resolver = resolver.New(observers{verdictLogger{s.logger}, s.metrics})
	}
	return s
}

// invalidate drops a hub snapshot. Failures only cost freshness, so they are logged.
func (s *settings) invalidate(ctx context.Context, slug string) {
	if s.cache == nil || slug == "" {
		return
	}
	if err := s.cache.Invalidate(ctx, slug); err != nil {
		s.logger.WarnContext(ctx, "hub snapshot invalidation failed", "slug", slug, "error", err)
	}
}

// observers fans resolver events out to several observers.
type observers []resolver.Observer

func (o observers) ObserveVerdict(v resolver.Verdict) {
	for _, obs := range o {
		obs.ObserveVerdict(v)
	}
}

func (o observers) ObserveResolve(total, visible int, d time.Duration) {
	for _, obs := range o {
		obs.ObserveResolve(total, visible, d)
	}
}

// verdictLogger traces every link decision at debug level.
type verdictLogger struct {
	logger *slog.Logger
}

func (l verdictLogger) ObserveVerdict(v resolver.Verdict) {
	if !l.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.logger.Debug("link verdict",
		"link_id", v.LinkID,
		"visible", v.Visible,
		"reason", string(v.Reason),
		"rule_index", v.RuleIndex,
	)
}

func (l verdictLogger) ObserveResolve(total, visible int, d time.Duration) {
	l.logger.Debug("links resolved", "total", total, "visible", visible, "duration", d)
}
