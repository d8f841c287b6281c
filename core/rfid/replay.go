package rfid

import (
	"context"

	"go.uber.org/zap"
)

// Replay is a Reader that plays back a fixed list of tag reads, such as a
// tag dump exported from a handheld reader.
type Replay struct {
	*Bridge
	epcs []string
}

// NewReplay creates a Replay over epcs.
func NewReplay(epcs []string, logger *zap.Logger) *Replay {
	return &Replay{Bridge: NewBridge(logger), epcs: epcs}
}

// Play publishes every tag in order and returns how many were delivered.
// It stops early when ctx is cancelled.
func (r *Replay) Play(ctx context.Context) (int, error) {
	delivered := 0
	for _, epc := range r.epcs {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}
		if r.Publish(Event{EPC: epc}) {
			delivered++
		}
	}
	return delivered, nil
}
