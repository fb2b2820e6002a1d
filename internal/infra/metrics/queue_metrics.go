// Package metrics provides the Prometheus metrics of the notification queue.
package metrics

import (
	"time"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "beacon"

// QueueMetrics implements service.ProcessorMetrics on a Prometheus registry.
type QueueMetrics struct {
	EntriesFinished   *prometheus.CounterVec   // Entries leaving processing, by resulting status
	GatewayDuration   *prometheus.HistogramVec // Gateway latency, by result
	TokenResults      *prometheus.CounterVec   // Per-token verdicts: success, failure, deactivated
	StaleRecoveries   *prometheus.CounterVec   // Stale sweep results: requeued, failed
	QueueEntriesGauge *prometheus.GaugeVec     // Rows per status at the last stats poll
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewQueueMetrics creates and registers the queue metrics.
func NewQueueMetrics(registry *prometheus.Registry) (*QueueMetrics, error) {
	m := &QueueMetrics{
		EntriesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_entries_finished_total",
				Help:      "Queue entries that left processing, by resulting status",
			},
			[]string{"status"}, // status: sent, pending, failed, cancelled
		),
		GatewayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_call_duration_seconds",
				Help:      "Push gateway call latency",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"result"}, // result: ok, error
		),
		TokenResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_token_results_total",
				Help:      "Per-token push verdicts",
			},
			[]string{"result"},
		),
		StaleRecoveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_stale_recovered_total",
				Help:      "Stale processing entries handled by the recovery sweep",
			},
			[]string{"result"},
		),
		QueueEntriesGauge: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "queue_entries",
				Help:      "Queue rows per status",
			},
			[]string{"status"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.EntriesFinished,
		m.GatewayDuration,
		m.TokenResults,
		m.StaleRecoveries,
		m.QueueEntriesGauge,
	} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register queue metrics")
		}
	}

	return m, nil
}

// NewProcessorMetrics adapts QueueMetrics to the domain port for Fx.
func NewProcessorMetrics(m *QueueMetrics) service.ProcessorMetrics {
	return m
}

func (m *QueueMetrics) EntryFinished(status string) {
	m.EntriesFinished.WithLabelValues(status).Inc()
}

func (m *QueueMetrics) GatewayCall(duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.GatewayDuration.WithLabelValues(result).Observe(duration.Seconds())
}

func (m *QueueMetrics) TokenOutcomes(success, failure, deactivated int) {
	m.TokenResults.WithLabelValues("success").Add(float64(success))
	m.TokenResults.WithLabelValues("failure").Add(float64(failure))
	m.TokenResults.WithLabelValues("deactivated").Add(float64(deactivated))
}

func (m *QueueMetrics) StaleRecovered(requeued, failed int64) {
	m.StaleRecoveries.WithLabelValues("requeued").Add(float64(requeued))
	m.StaleRecoveries.WithLabelValues("failed").Add(float64(failed))
}

func (m *QueueMetrics) QueueDepth(counts map[string]int64) {
	for status, count := range counts {
		m.QueueEntriesGauge.WithLabelValues(status).Set(float64(count))
	}
}

// noopMetrics drops every observation.
type noopMetrics struct{}

// NewNoopMetrics returns a ProcessorMetrics for processes that do not expose /metrics.
func NewNoopMetrics() service.ProcessorMetrics {
	return noopMetrics{}
}

func (noopMetrics) EntryFinished(string) {}
func (noopMetrics) GatewayCall(time.Duration, error) {}
func (noopMetrics) TokenOutcomes(int, int, int) {}
func (noopMetrics) StaleRecovered(int64, int64) {}
func (noopMetrics) QueueDepth(map[string]int64) {}
