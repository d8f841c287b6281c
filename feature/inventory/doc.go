// Package inventory owns the master inventory: the catalogue of every tagged
// item the showroom is expected to hold.
//
// # Store
//
// Store keeps the master list behind an atomic pointer. An import builds a
// complete new list and publishes it with Replace; scan sessions take a
// Snapshot when they start and never see a half-applied import. Listeners
// registered with OnReplace run after each replacement (scan history is
// cleared this way).
//
// # Import Sources
//
//   - upload: CSV posted to /inventory/import (multipart or raw body)
//   - object: CSV read from the object storage bucket
//   - database: rows of the point-of-sale stock table, mapped through the
//     same header table as CSV columns (tag_no -> "tag no", gr_wt -> "gr.wt")
//
// An import that parses but yields no records fails with ErrNoValidItems and
// leaves the master untouched. UserMessage turns any import error into one
// operator-facing sentence.
//
// # Endpoints
//
//	POST /inventory/import
//	GET  /inventory/import/objects
//	POST /inventory/import/object?name=imports/april.csv
//	POST /inventory/import/database
//	GET  /inventory?q=diamond
//	GET  /inventory/stats
//	GET  /inventory/:epc
package inventory
