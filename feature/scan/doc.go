// Package scan runs stock-check sessions: it collects tag reads from the RFID
// reader, reconciles them against the master inventory and keeps a history of
// finished sessions.
//
// # Session Lifecycle
//
//	Idle --Start--> Active --Stop--> Idle (scanned items kept)
//	Active/Idle --Finish--> Finalizing --> Idle (scanned items cleared)
//
// Start snapshots the master inventory and subscribes to the reader. While
// active, each tag read is looked up in the snapshot; unknown tags become
// "Uncatalogued Item" placeholders. A tag is recorded once, on its first read.
// Reads arriving outside the active state are ignored. Start while active and
// Stop while idle are no-ops.
//
// Finish reconciles the scanned items (in first-seen order) against the
// snapshot, appends the result to History and resets the session. Close
// releases the reader subscription in any state.
//
// # History
//
// History entries are identified by their creation time in unix milliseconds,
// bumped when two sessions finish within the same millisecond. List returns
// newest first. Importing a new master inventory clears the history and
// rebases a pending scan onto the new master, so its result is reconciled
// against the inventory that is current when it finishes.
//
// # Endpoints
//
//	GET  /scan
//	POST /scan/start
//	POST /scan/stop
//	POST /scan/finish
//	GET  /history
//	GET  /history/:id
//	GET  /report
//	GET  /report/:category
//	GET  /dashboard
package scan
