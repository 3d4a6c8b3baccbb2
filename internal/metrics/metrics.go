// Package metrics exposes conversion counters in Prometheus format. The
// converter is a batch tool, so metrics are written to a textfile for the
// node exporter's textfile collector rather than served.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/compiler"
)

const namespace = "scs_converter"

// File outcome label values.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
)

// Metrics holds the converter's collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	FilesTotal    *prometheus.CounterVec
	TriplesTotal  prometheus.Counter
	LinksTotal    prometheus.Counter
	RunDuration   prometheus.Histogram
	LastRunTime   prometheus.Gauge
	LastRunFailed prometheus.Gauge
}

// New creates and registers the converter metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		FilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "files",
				Name:      "total",
				Help:      "Source files processed, by outcome",
			},
			[]string{"status"},
		),

		TriplesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "triples",
			Name:      "emitted_total",
			Help:      "Triples emitted by converted files",
		}),

		LinksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "links",
			Name:      "extracted_total",
			Help:      "Content payloads extracted into link files",
		}),

		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time of a whole conversion run",
			Buckets:   prometheus.DefBuckets,
		}),

		LastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "last_timestamp_seconds",
			Help:      "Unix time at which the last run finished",
		}),

		LastRunFailed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "last_failed_files",
			Help:      "Files skipped with errors in the last run",
		}),
	}

	m.registry.MustRegister(
		m.FilesTotal,
		m.TriplesTotal,
		m.LinksTotal,
		m.RunDuration,
		m.LastRunTime,
		m.LastRunFailed,
	)
	return m
}

// Registry returns the private registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveReport records the per-file outcomes of a batch.
func (m *Metrics) ObserveReport(r *compiler.Report) {
	if r == nil {
		return
	}
	for _, f := range r.Files {
		if f.Err != nil {
			m.FilesTotal.WithLabelValues(StatusFailed).Inc()
			continue
		}
		m.FilesTotal.WithLabelValues(StatusConverted).Inc()
		m.TriplesTotal.Add(float64(f.Triples))
		m.LinksTotal.Add(float64(f.Links))
	}
	m.LastRunFailed.Set(float64(r.Failed))
}

// ObserveRun records the duration of a finished run.
func (m *Metrics) ObserveRun(d time.Duration, finished time.Time) {
	m.RunDuration.Observe(d.Seconds())
	m.LastRunTime.Set(float64(finished.Unix()))
}

// WriteFile writes every collected metric to path in the text exposition
// format. The file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
