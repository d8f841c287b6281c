// Package rfid is the boundary to the RFID reader hardware.
//
// The core never talks to a device directly. It depends on the Reader
// interface: initialize, start, stop and subscribe. Each Subscribe call returns
// its own disposer, so there is no shared callback slot to clean up.
//
// # Bridge
//
// Bridge is the production Reader. The native wrapper that owns the antenna
// posts tag reads to POST /rfid/events; the Bridge validates them and delivers
// them to subscribers one at a time in arrival order. Reads posted while no
// scan is running are dropped.
//
// # Replay
//
// Replay plays back a fixed list of EPCs through a Bridge. The offline
// reconcile command and the tests use it in place of hardware.
//
// # Usage
//
//	bridge := rfid.NewBridge(logger)
//	stop := bridge.Subscribe(func(ev rfid.Event) { ... })
//	defer stop()
//	_ = bridge.Initialize(ctx)
//	_ = bridge.StartScan(ctx)
package rfid
