package rfid

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Bridge is an in-process Reader fed by the native reader wrapper.
// The wrapper pushes tag reads through Publish (normally via the HTTP
// endpoint) and the Bridge fans them out to subscribers.
type Bridge struct {
	logger *zap.Logger

	mu          sync.Mutex
	initialized bool
	scanning    bool
	nextID      uint64
	subs        map[uint64]Handler

	// deliverMu serializes delivery so handlers never run concurrently.
	deliverMu sync.Mutex
}

// NewBridge creates a Bridge.
func NewBridge(logger *zap.Logger) *Bridge {
	return &Bridge{
		logger: logger,
		subs:   make(map[uint64]Handler),
	}
}

// Initialize marks the bridge ready.
func (b *Bridge) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		b.initialized = true
		b.logger.Info("RFID bridge initialized")
	}
	return nil
}

// StartScan starts accepting published events.
func (b *Bridge) StartScan(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return ErrNotInitialized
	}
	b.scanning = true
	return nil
}

// StopScan stops accepting published events.
func (b *Bridge) StopScan(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scanning = false
	return nil
}

// Scanning reports whether the bridge currently accepts events.
func (b *Bridge) Scanning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scanning
}

// Subscribe registers h.
func (b *Bridge) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers ev to every subscriber in subscription order. It returns
// false, dropping the event, when the bridge is not scanning.
func (b *Bridge) Publish(ev Event) bool {
	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	b.mu.Lock()
	if !b.scanning {
		b.mu.Unlock()
		b.logger.Debug("Dropping tag event, not scanning", zap.String("epc", ev.EPC))
		return false
	}
	ids := make([]uint64, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.subs[id])
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
	return true
}
