// Package metrics defines the Prometheus collectors for the showroom service.
//
// Collectors are registered on the default registry through promauto and
// updated directly by the features:
//   - scan: tag events by outcome, finished sessions, last result sizes
//   - inventory: imports by source and outcome, coercion warnings, master size
//   - export: exports by sink and category, cache hits and misses
//
// Feature mounts the scrape endpoint at /metrics.
package metrics
