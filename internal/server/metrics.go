package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/passport-scorer/scorer-ui/pkg/footer"
)

// Metrics holds the Prometheus collectors for the footer service.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rendersTotal    *prometheus.CounterVec
	memoLookups     *prometheus.CounterVec
	liveSessions    prometheus.Gauge
	liveMessages    *prometheus.CounterVec
}

// NewMetrics registers the service collectors on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"route", "method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "footer_renders_total",
			Help:      "Total number of footer renders by resolved variant",
		}, []string{"variant"}),

		memoLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "footer_asset_memo_lookups_total",
			Help:      "Asset bundle memo lookups by result",
		}, []string{"result"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions",
			Help:      "Number of open live footer websocket sessions",
		}),

		liveMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_messages_total",
			Help:      "Live footer websocket messages by direction",
		}, []string{"direction"}),
	}
}

// The methods below are nil-safe so handlers need not check whether
// metrics are enabled.

func (m *Metrics) observeRequest(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, method, status).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Metrics) observeRender(mode footer.DisplayMode, reused bool) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(string(mode.Variant())).Inc()
	result := "miss"
	if reused {
		result = "hit"
	}
	m.memoLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.liveSessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.liveSessions.Dec()
	}
}

func (m *Metrics) message(direction string) {
	if m != nil {
		m.liveMessages.WithLabelValues(direction).Inc()
	}
}
