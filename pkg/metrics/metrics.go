package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/resolver"
)

// Metrics holds the Prometheus collectors for hub resolution and tracking.
type Metrics struct {
	// Resolve latency for one public hub view
	ResolveLatency prometheus.Histogram

	// Links evaluated, by verdict reason
	Verdicts *prometheus.CounterVec

	HubViews prometheus.Counter
	Clicks   prometheus.Counter
}

// New creates Metrics registered with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates Metrics registered with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkhub_resolve_duration_seconds",
			Help:    "Duration of filtering and ranking a hub's links for one request",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		Verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "linkhub_link_verdicts_total",
			Help: "Links evaluated during resolution by verdict reason",
		}, []string{"reason"}), // reason: visible, inactive, show-unmatched, hide-matched
		HubViews: factory.NewCounter(prometheus.CounterOpts{
			Name: "linkhub_hub_views_total",
			Help: "Public hub page views served",
		}),
		Clicks: factory.NewCounter(prometheus.CounterOpts{
			Name: "linkhub_clicks_total",
			Help: "Link clicks recorded",
		}),
	}
}

// ObserveVerdict implements resolver.Observer.
func (m *Metrics) ObserveVerdict(v resolver.Verdict) {
	if m != nil {
		m.Verdicts.WithLabelValues(string(v.Reason)).Inc()
	}
}

// ObserveResolve implements resolver.Observer.
func (m *Metrics) ObserveResolve(_, _ int, d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}

// IncrementHubViews records one public hub view.
func (m *Metrics) IncrementHubViews() {
	if m != nil {
		m.HubViews.Inc()
	}
}

// IncrementClicks records one tracked click.
func (m *Metrics) IncrementClicks() {
	if m != nil {
		m.Clicks.Inc()
	}
}

var _ resolver.Observer = (*Metrics)(nil)
