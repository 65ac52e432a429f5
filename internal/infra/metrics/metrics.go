// Package metrics exposes Prometheus collectors for the ledger, lead and import flows
// and for the HTTP transport.
package metrics

import (
	"database/sql"
	"net/http"

	"leadhub/config"
	"leadhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultNamespace = "leadhub"
	defaultPath      = "/metrics"
)

// Registry owns every collector of the process. It is created once and shared
// between the business recorder and the HTTP middleware.
type Registry struct {
	registry *prometheus.Registry
	path     string
	enabled  bool

	creditsPurchased  prometheus.Counter
	creditsConsumed   prometheus.Counter
	contactRejections *prometheus.CounterVec
	leadsCreated      prometheus.Counter
	importRows        *prometheus.CounterVec
	jobsPublished     *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Registry)(nil)

// New builds the registry from configuration. A nil metrics section yields an
// enabled registry with default namespace and path.
func New(cfg *config.Config) *Registry {
	namespace := defaultNamespace
	path := defaultPath
	enabled := true
	if cfg != nil && cfg.Metrics != nil {
		enabled = cfg.Metrics.Enabled
		if cfg.Metrics.Namespace != "" {
			namespace = cfg.Metrics.Namespace
		}
		if cfg.Metrics.Path != "" {
			path = cfg.Metrics.Path
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
		path:     path,
		enabled:  enabled,
		creditsPurchased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_purchased_total",
			Help:      "Total number of lead credits added to vendor balances",
		}),
		creditsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_consumed_total",
			Help:      "Total number of lead credits spent on contacting buyers",
		}),
		contactRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_rejections_total",
			Help:      "Total number of rejected lead contacts",
		}, []string{"reason"}),
		leadsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_created_total",
			Help:      "Total number of leads raised by buyers",
		}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Total number of bulk import rows by result",
		}, []string{"result"}),
		jobsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_published_total",
			Help:      "Total number of notification jobs handed to the queue by job name and result",
		}, []string{"job", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	reg.MustRegister(
		r.creditsPurchased,
		r.creditsConsumed,
		r.contactRejections,
		r.leadsCreated,
		r.importRows,
		r.jobsPublished,
		r.httpRequests,
		r.httpDuration,
	)

	return r
}

// NewRecorder exposes the registry as the domain metrics recorder.
func NewRecorder(r *Registry) service.MetricsRecorder {
	return r
}

// Enabled reports whether the scrape endpoint should be mounted.
func (r *Registry) Enabled() bool {
	return r.enabled
}

// Path is the scrape endpoint path.
func (r *Registry) Path() string {
	return r.path
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RegisterDBStats exports connection pool statistics of db under dbName.
func (r *Registry) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := r.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "failed to register db stats collector")
	}

	return nil
}

// Gatherer gives tests access to the collected families.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) CreditsPurchased(credits int) {
	if credits > 0 {
		r.creditsPurchased.Add(float64(credits))
	}
}

func (r *Registry) CreditConsumed() {
	r.creditsConsumed.Inc()
}

func (r *Registry) ContactRejected(reason string) {
	r.contactRejections.WithLabelValues(reason).Inc()
}

func (r *Registry) LeadCreated() {
	r.leadsCreated.Inc()
}

func (r *Registry) ImportRow(result string) {
	r.importRows.WithLabelValues(result).Inc()
}

// JobPublished counts one enqueue attempt of the notification queue.
func (r *Registry) JobPublished(name string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.jobsPublished.WithLabelValues(name, result).Inc()
}
