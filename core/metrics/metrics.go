package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan Metrics
var (
	TagEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTagEvents,
			Help: HelpTextTagEvents,
		},
		[]string{LabelOutcome},
	)

	ScanSessions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScanSessions,
			Help: HelpTextScanSessions,
		},
	)

	LastScanResults = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLastScanResults,
			Help: HelpTextLastScanResults,
		},
		[]string{LabelCategory},
	)
)

// Inventory Metrics
var (
	Imports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImports,
			Help: HelpTextImports,
		},
		[]string{LabelSource, LabelOutcome},
	)

	ImportWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameImportWarnings,
			Help: HelpTextImportWarnings,
		},
	)

	InventorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInventorySize,
			Help: HelpTextInventorySize,
		},
	)
)

// Export Metrics
var (
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExports,
			Help: HelpTextExports,
		},
		[]string{LabelSink, LabelCategory},
	)

	ExportCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExportCache,
			Help: HelpTextExportCache,
		},
		[]string{LabelResult},
	)
)
