// Package metrics records the outcome of a probeplot run as Prometheus
// metrics and writes them in the node exporter textfile format.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vdobler/probeplot"
)

const namespace = "probeplot"

// Manager implements probeplot.Recorder on a private registry. Series are
// keyed by condition ordinal and label; labels may repeat within a run.
type Manager struct {
	registry *prometheus.Registry

	events            *prometheus.CounterVec
	validationRate    *prometheus.GaugeVec
	sizeSamples       *prometheus.GaugeVec
	conditionFailures *prometheus.CounterVec
	artifacts         *prometheus.CounterVec
}

var _ probeplot.Recorder = (*Manager)(nil)

// NewManager creates a Manager with a fresh registry.
func NewManager() *Manager {
	m := &Manager{registry: prometheus.NewRegistry()}
	auto := promauto.With(m.registry)

	m.events = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Number of bubble events read, by condition and validity flag.",
	}, []string{"ordinal", "condition", "flag"})

	m.validationRate = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "validation_rate_percent",
		Help:      "Share of valid events per condition in percent, truncated.",
	}, []string{"ordinal", "condition"})

	m.sizeSamples = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "size_samples",
		Help:      "Number of valid events in the size sample per condition.",
	}, []string{"ordinal", "condition"})

	m.conditionFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "condition_failures_total",
		Help:      "Conditions that could not be processed, by reason.",
	}, []string{"ordinal", "condition", "reason"})

	m.artifacts = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artifacts_total",
		Help:      "Figures written, by kind.",
	}, []string{"kind"})

	return m
}

func (m *Manager) ConditionProcessed(cond *probeplot.Condition, s probeplot.Summary) {
	ord := strconv.Itoa(cond.Ordinal)
	m.events.WithLabelValues(ord, cond.Label, "valid").Add(float64(s.Valid))
	m.events.WithLabelValues(ord, cond.Label, "invalid").Add(float64(s.Total - s.Valid))
	m.validationRate.WithLabelValues(ord, cond.Label).Set(float64(s.Rate))
	m.sizeSamples.WithLabelValues(ord, cond.Label).Set(float64(s.SizeSamples))
}

func (m *Manager) ConditionFailed(ordinal int, label string, err error) {
	m.conditionFailures.WithLabelValues(strconv.Itoa(ordinal), label, probeplot.Reason(err)).Inc()
}

func (m *Manager) ArtifactWritten(a probeplot.Artifact) {
	m.artifacts.WithLabelValues(a.Kind).Inc()
}

// WriteTextfile writes all metrics to path, atomically.
func (m *Manager) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
