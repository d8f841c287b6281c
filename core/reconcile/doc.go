// Package reconcile compares a master inventory against the set of tags
// observed during a scan session.
//
// The engine is a pure function: given the master records and the scanned
// records it produces a three-way diff without touching any shared state.
//
//   - Found: master records whose EPC was scanned, in master order.
//   - Missing: master records whose EPC was not scanned, in master order.
//   - New: scanned records whose EPC is unknown to the master, in scan order.
//
// Every master EPC lands in exactly one of Found or Missing. Identical inputs
// always yield identical output, including order, so results can be cached
// and compared byte for byte.
//
// # Summary
//
// Summarize aggregates a result into counts and stock values per category.
// Values are summed with shopspring/decimal so totals over thousands of
// prices do not drift.
//
// # Usage
//
//	result := reconcile.Reconcile(master, scanned)
//	for _, rec := range result.Missing {
//	    fmt.Println(rec.EPC, rec.Name)
//	}
//	summary := reconcile.Summarize(result)
package reconcile
