package metrics

// Metric names
const (
	MetricNameTagEvents       = "showroom_tag_events_total"
	MetricNameScanSessions    = "showroom_scan_sessions_total"
	MetricNameImports         = "showroom_imports_total"
	MetricNameImportWarnings  = "showroom_import_warnings_total"
	MetricNameExports         = "showroom_exports_total"
	MetricNameExportCache     = "showroom_export_cache_lookups_total"
	MetricNameInventorySize   = "showroom_inventory_size"
	MetricNameLastScanResults = "showroom_last_scan_items"
)

// Help text
const (
	HelpTextTagEvents       = "Tag events received by the scan session, by outcome"
	HelpTextScanSessions    = "Finished scan sessions"
	HelpTextImports         = "Inventory imports, by source and outcome"
	HelpTextImportWarnings  = "Numeric cells that fell back to 0 during import"
	HelpTextExports         = "Report exports, by sink and category"
	HelpTextExportCache     = "Export cache lookups, by result"
	HelpTextInventorySize   = "Records in the master inventory"
	HelpTextLastScanResults = "Items in the most recent scan result, by category"
)

// Labels
const (
	LabelOutcome  = "outcome"
	LabelSource   = "source"
	LabelSink     = "sink"
	LabelCategory = "category"
	LabelResult   = "result"
)

// Tag event outcomes
const (
	OutcomeMatched     = "matched"
	OutcomePlaceholder = "placeholder"
	OutcomeDuplicate   = "duplicate"
	OutcomeIgnored     = "ignored"
)

// Import outcomes
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeFailed  = "failed"
)

// Cache results
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)
