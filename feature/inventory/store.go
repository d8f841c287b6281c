package inventory

import (
	"sync"
	"sync/atomic"

	"showroom-audit/core/item"
	"showroom-audit/core/metrics"
)

// Store holds the process-wide master inventory. Replace swaps the whole
// list in one step, so readers see either the old or the new inventory.
type Store struct {
	records atomic.Pointer[[]item.Record]

	mu        sync.Mutex
	listeners []func(n int)
}

// NewStore creates a Store holding records.
func NewStore(records []item.Record) *Store {
	s := &Store{}
	s.set(records)
	return s
}

// Snapshot returns the current master inventory. The slice is shared and
// must not be modified.
func (s *Store) Snapshot() []item.Record {
	if p := s.records.Load(); p != nil {
		return *p
	}
	return nil
}

// Len returns the number of records in the master inventory.
func (s *Store) Len() int {
	return len(s.Snapshot())
}

// Replace publishes records as the new master inventory and notifies
// listeners with the new size.
func (s *Store) Replace(records []item.Record) {
	s.set(records)

	s.mu.Lock()
	listeners := make([]func(int), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(len(records))
	}
}

// OnReplace registers fn to run after every Replace.
func (s *Store) OnReplace(fn func(n int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) set(records []item.Record) {
	cp := make([]item.Record, len(records))
	copy(cp, records)
	s.records.Store(&cp)
	metrics.InventorySize.Set(float64(len(cp)))
}
