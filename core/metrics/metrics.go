package metrics

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	RunResultSuccess    = "success"
	RunResultFailed     = "failed"
	RunResultContention = "in_progress"

	LookupResultHit     = "hit"
	LookupResultMiss    = "miss"
	LookupResultTimeout = "timeout"
	LookupResultError   = "error"
)

// Pipeline captures ingestion health signals. A nil *Pipeline is a valid no-op.
type Pipeline struct {
	registry *prometheus.Registry
	items    *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	lookups  *prometheus.CounterVec
	renders  *prometheus.CounterVec
}

// NewPipeline registers the pipeline collectors on a dedicated registry that also
// carries the Go and process collectors.
func NewPipeline(cfg Config) *Pipeline {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	p := newPipeline(registry, cfg.Namespace)
	p.registry = registry
	return p
}

func newPipeline(registerer prometheus.Registerer, namespace string) *Pipeline {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	namespace = strings.TrimSpace(namespace)

	p := &Pipeline{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_items_total",
			Help:      "Countries processed by ingestion runs, by outcome.",
		}, []string{"outcome"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingestion_runs_total",
			Help:      "Ingestion runs, by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingestion_run_duration_seconds",
			Help:      "Wall time of completed ingestion runs.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exchange_lookups_total",
			Help:      "Exchange rate lookups, by result.",
		}, []string{"result"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_renders_total",
			Help:      "Summary report renders, by result.",
		}, []string{"result"}),
	}

	registerer.MustRegister(p.items, p.runs, p.duration, p.lookups, p.renders)
	return p
}

// ObserveItem counts one reconciled item.
func (p *Pipeline) ObserveItem(outcome string) {
	if p == nil {
		return
	}
	p.items.WithLabelValues(outcome).Inc()
}

// ObserveRun records a finished run and its duration.
func (p *Pipeline) ObserveRun(result string, elapsed time.Duration) {
	if p == nil {
		return
	}
	p.runs.WithLabelValues(result).Inc()
	if result == RunResultSuccess {
		p.duration.Observe(elapsed.Seconds())
	}
}

// ObserveLookup counts one exchange rate resolution.
func (p *Pipeline) ObserveLookup(result string) {
	if p == nil {
		return
	}
	p.lookups.WithLabelValues(result).Inc()
}

// ObserveRender counts one report render.
func (p *Pipeline) ObserveRender(err error) {
	if p == nil {
		return
	}
	result := RunResultSuccess
	if err != nil {
		result = RunResultFailed
	}
	p.renders.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (p *Pipeline) Handler() fiber.Handler {
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if p != nil && p.registry != nil {
		gatherer = p.registry
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
