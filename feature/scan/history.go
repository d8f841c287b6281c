package scan

import (
	"errors"
	"sync"
	"time"

	"showroom-audit/core/reconcile"
)

// ErrEntryNotFound is returned when a history entry does not exist.
var ErrEntryNotFound = errors.New("history entry not found")

// Entry is one finished scan session.
type Entry struct {
	// ID is derived from the creation time in unix milliseconds and is
	// strictly increasing.
	ID        int64                `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Result    reconcile.ScanResult `json:"result"`
	Summary   reconcile.Summary    `json:"summary"`
}

// History is the in-memory list of finished scan sessions.
type History struct {
	mu      sync.RWMutex
	entries []Entry
	lastID  int64
	limit   int
	now     func() time.Time
	onClear []func()
}

// NewHistory creates a History keeping at most limit entries (0 = unbounded).
func NewHistory(limit int) *History {
	return &History{limit: limit, now: time.Now}
}

// Append records a result and returns its entry.
func (h *History) Append(result reconcile.ScanResult) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	id := now.UnixMilli()
	if id <= h.lastID {
		id = h.lastID + 1
	}
	h.lastID = id

	entry := Entry{
		ID:        id,
		CreatedAt: now,
		Result:    result,
		Summary:   reconcile.Summarize(result),
	}
	h.entries = append(h.entries, entry)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = append([]Entry(nil), h.entries[len(h.entries)-h.limit:]...)
	}
	return entry
}

// List returns the entries, newest first.
func (h *History) List() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Get returns the entry with the given ID.
func (h *History) Get(id int64) (Entry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Clear removes every entry and runs the OnClear callbacks.
func (h *History) Clear() {
	h.mu.Lock()
	h.entries = nil
	callbacks := append([]func(){}, h.onClear...)
	h.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// OnClear registers fn to run after Clear.
func (h *History) OnClear(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onClear = append(h.onClear, fn)
}
