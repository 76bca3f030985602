// Package metrics provides Prometheus metrics for the fill-rate pipeline.
//
// The pipeline is a batch process, so nothing is exposed over HTTP; the
// registry exists to count work as it happens and to produce an end-of-run
// snapshot for the operator log.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	// Ingest metrics
	recordsLoaded prometheus.Counter
	rowsSkipped   *prometheus.CounterVec

	// Output metrics
	reportsWritten *prometheus.CounterVec
	chartsWritten  prometheus.Counter

	// Run metrics
	runDurationSeconds prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "fillrate",
		subsystem: "pipeline",
		registry:  prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded_total",
		Help:      "Total number of job records successfully loaded",
	})

	m.rowsSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_skipped_total",
		Help:      "Total number of input rows flagged or dropped, by reason",
	}, []string{"reason"})

	m.reportsWritten = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_written_total",
		Help:      "Total number of report pages written, by scope",
	}, []string{"scope"})

	m.chartsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "charts_written_total",
		Help:      "Total number of chart documents written",
	})

	m.runDurationSeconds = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of the last pipeline run",
	})
}

// RecordLoaded counts n successfully loaded job records.
func RecordLoaded(n int) { globalManager.recordsLoaded.Add(float64(n)) }

// RecordRowSkipped counts one flagged or dropped input row.
func RecordRowSkipped(reason string) { globalManager.rowsSkipped.WithLabelValues(reason).Inc() }

// RecordReportWritten counts one written report page for a scope.
func RecordReportWritten(scope string) { globalManager.reportsWritten.WithLabelValues(scope).Inc() }

// RecordChartWritten counts one written chart document.
func RecordChartWritten() { globalManager.chartsWritten.Inc() }

// RecordRunDuration records the wall-clock duration of the run in seconds.
func RecordRunDuration(seconds float64) { globalManager.runDurationSeconds.Set(seconds) }

// Snapshot gathers the registry into "name{labels}=value" lines, sorted, for
// end-of-run logging.
func Snapshot() ([]string, error) {
	return globalManager.Snapshot()
}

// Snapshot gathers this manager's registry.
func (m *Manager) Snapshot() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatherFailed, err)
	}

	var lines []string
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			label := ""
			for _, lp := range metric.GetLabel() {
				label += fmt.Sprintf("%s=%q,", lp.GetName(), lp.GetValue())
			}
			if label != "" {
				label = "{" + label[:len(label)-1] + "}"
			}
			var value float64
			switch {
			case metric.GetCounter() != nil:
				value = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				value = metric.GetGauge().GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s%s=%g", fam.GetName(), label, value))
		}
	}
	sort.Strings(lines)
	return lines, nil
}
