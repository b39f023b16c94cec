package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafaelleal24/smartretail/internal/core/port"
)

const namespace = "retail"

type Recorder struct {
	registry *prometheus.Registry

	purchasesTotal      *prometheus.CounterVec
	loyaltyPointsTotal  prometheus.Counter
	loginsTotal         *prometheus.CounterVec
	signupsTotal        prometheus.Counter
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var _ port.MetricsPort = (*Recorder)(nil)

// NewRecorder registers every collector on its own registry so several recorders
// can live in one process.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		purchasesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Total number of purchase attempts by result.",
		}, []string{"result"}),
		loyaltyPointsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loyalty_points_awarded_total",
			Help:      "Total loyalty points awarded to customers.",
		}),
		loginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of login attempts by result.",
		}, []string{"result"}),
		signupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Total number of completed signups.",
		}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
	}
}

func (r *Recorder) PurchaseRecorded(result string) {
	r.purchasesTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) LoyaltyPointsAwarded(points int64) {
	if points <= 0 {
		return
	}
	r.loyaltyPointsTotal.Add(float64(points))
}

func (r *Recorder) LoginRecorded(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	r.loginsTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) SignupRecorded() {
	r.signupsTotal.Inc()
}

func (r *Recorder) ObserveRequest(method, route string, statusCode int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(statusCode)
	r.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	r.httpRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Noop satisfies port.MetricsPort for tests and tools that do not export metrics.
type Noop struct{}

func (Noop) PurchaseRecorded(string)    {}
func (Noop) LoyaltyPointsAwarded(int64) {}
func (Noop) LoginRecorded(bool)         {}
func (Noop) SignupRecorded()            {}
