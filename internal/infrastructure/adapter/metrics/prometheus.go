package metrics

import (
	"database/sql"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
)

const namespace = "wallet_ledger"

// Prometheus records ledger and HTTP metrics into its own registry
type Prometheus struct {
	registry *prometheus.Registry

	operations      *prometheus.CounterVec
	operationTime   *prometheus.HistogramVec
	retries         *prometheus.CounterVec
	publishFailures prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	poolOpen  prometheus.Gauge
	poolInUse prometheus.Gauge
	poolIdle  prometheus.Gauge

	// last cumulative pool counters, read at scrape time
	waitCount    atomic.Int64
	waitDuration atomic.Int64
}

var _ coreport.Metrics = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them, together with the
// Go runtime and process collectors, on a fresh registry
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Wallet operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		operationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of wallet operations including queueing and retries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_total",
			Help:      "Units of work re-run after a lock conflict",
		}, []string{"operation"}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Committed ledger events that could not be published",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		poolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Open database connections",
		}),
		poolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Database connections currently in use",
		}),
		poolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Idle database connections",
		}),
	}

	poolWaits := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "db_wait_total",
		Help:      "Total number of connections waited for",
	}, func() float64 { return float64(p.waitCount.Load()) })
	poolWaitTime := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "db_wait_duration_seconds_total",
		Help:      "Total time blocked waiting for a new connection",
	}, func() float64 { return time.Duration(p.waitDuration.Load()).Seconds() })

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.operations, p.operationTime, p.retries, p.publishFailures,
		p.httpRequests, p.httpDuration,
		p.poolOpen, p.poolInUse, p.poolIdle, poolWaits, poolWaitTime,
	)
	return p
}

// ObserveOperation records one finished wallet operation
func (p *Prometheus) ObserveOperation(operation, outcome string, elapsed coreport.Duration) {
	p.operations.WithLabelValues(operation, outcome).Inc()
	p.operationTime.WithLabelValues(operation).Observe(elapsed.Std().Seconds())
}

// IncRetry counts a retried unit of work
func (p *Prometheus) IncRetry(operation string) {
	p.retries.WithLabelValues(operation).Inc()
}

// IncPublishFailure counts a dropped ledger event
func (p *Prometheus) IncPublishFailure() {
	p.publishFailures.Inc()
}

// ObserveHTTP records one served request
func (p *Prometheus) ObserveHTTP(route, method, status string, elapsed coreport.Duration) {
	p.httpRequests.WithLabelValues(route, method, status).Inc()
	p.httpDuration.WithLabelValues(route, method).Observe(elapsed.Std().Seconds())
}

// ObservePool mirrors database/sql pool statistics. Connection counts are
// gauges; WaitCount and WaitDuration are cumulative and exported as counters.
func (p *Prometheus) ObservePool(stats sql.DBStats) {
	p.poolOpen.Set(float64(stats.OpenConnections))
	p.poolInUse.Set(float64(stats.InUse))
	p.poolIdle.Set(float64(stats.Idle))
	p.waitCount.Store(stats.WaitCount)
	p.waitDuration.Store(int64(stats.WaitDuration))
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
