// Package export renders reconciliation results as CSV and stores them.
//
// # Format
//
// Every export starts with the fixed 26-column header in Columns. Each record
// becomes one row in that order; absent optional fields are empty cells and
// numbers use the shortest decimal form ("12.5", "1500"). Fields holding the
// delimiter, a quote or a line break are quoted with doubled inner quotes, so
// an export can be imported again as a master inventory.
//
// An empty record set is never written: Write and Export return
// ErrEmptyExportSet and the handlers answer 422 with the notice
// "No items to export.".
//
// # Filenames
//
//	<category>_items_report.csv            missing or new items of the last scan
//	missing_items_<YYYY-MM-DD>_<id>.csv    missing items of a history entry
//
// # Sinks
//
// FileSink writes into the configured directory. ObjectSink streams the CSV
// to the object storage bucket through an io.Pipe. Export closes the sink
// handle on every path.
//
// # Caching
//
// Rendered reports are cached per history entry and category. The cache is
// purged whenever the scan history is cleared.
//
// # Endpoints
//
//	GET  /report/:category/export      download
//	POST /report/:category/export      store (?sink=file|object)
//	GET  /history/:id/export           download
//	POST /history/:id/export           store (?sink=file|object)
//	GET  /exports/sinks
package export
