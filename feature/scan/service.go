package scan

import (
	"context"
	"sync"
	"time"

	"showroom-audit/core/item"
	"showroom-audit/core/reconcile"
	"showroom-audit/core/rfid"
	"showroom-audit/feature/inventory"

	"go.uber.org/zap"
)

// Status describes the running session.
type Status struct {
	State   State         `json:"state"`
	Count   int           `json:"count"`
	Scanned []item.Record `json:"scanned"`
}

// Dashboard holds the figures shown on the home screen.
type Dashboard struct {
	TotalStock int `json:"total_stock"`
	// Found, Missing and New come from the last finished scan; zero when
	// there is none.
	Found      int        `json:"found"`
	Missing    int        `json:"missing"`
	New        int        `json:"new"`
	LastScanAt *time.Time `json:"last_scan_at,omitempty"`
	// LastScan carries values for the last scan.
	LastScan *reconcile.Summary `json:"last_scan,omitempty"`
}

// Service glues the master store, the session and the history together.
type Service struct {
	store   *inventory.Store
	session *Session
	history *History
	logger  *zap.Logger

	mu   sync.RWMutex
	last *Entry
}

// NewService creates the scan service. Replacing the master inventory rebases
// a pending scan onto the new master and clears the history and the last
// result.
func NewService(store *inventory.Store, reader rfid.Reader, logger *zap.Logger, cfg Config) *Service {
	history := NewHistory(cfg.HistoryLimit)
	svc := &Service{
		store:   store,
		session: NewSession(reader, store, history, logger),
		history: history,
		logger:  logger,
	}
	store.OnReplace(func(n int) {
		// Rebase before clearing so a Finish racing the import either lands
		// in history before the clear or reconciles against the new master.
		svc.session.Rebase(store.Snapshot())
		svc.history.Clear()
		svc.mu.Lock()
		svc.last = nil
		svc.mu.Unlock()
		logger.Info("Scan history cleared after inventory import", zap.Int("total_stock", n))
	})
	return svc
}

// History returns the scan history.
func (s *Service) History() *History {
	return s.history
}

// Session returns the scan session.
func (s *Service) Session() *Session {
	return s.session
}

// Start starts a scan.
func (s *Service) Start(ctx context.Context) error {
	return s.session.Start(ctx)
}

// Stop pauses the scan.
func (s *Service) Stop(ctx context.Context) error {
	return s.session.Stop(ctx)
}

// Finish completes the scan and remembers its result for the dashboard.
func (s *Service) Finish(ctx context.Context) (Entry, error) {
	entry, err := s.session.Finish(ctx)
	if err != nil {
		return Entry{}, err
	}
	s.mu.Lock()
	// An import may have cleared history since the entry was appended.
	if _, err := s.history.Get(entry.ID); err == nil {
		s.last = &entry
	}
	s.mu.Unlock()
	return entry, nil
}

// Status returns the running session's state and scanned items.
func (s *Service) Status() Status {
	scanned := s.session.Scanned()
	return Status{
		State:   s.session.State(),
		Count:   len(scanned),
		Scanned: scanned,
	}
}

// LastResult returns the most recent finished scan.
func (s *Service) LastResult() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Entry{}, false
	}
	return *s.last, true
}

// Dashboard returns the home screen figures.
func (s *Service) Dashboard() Dashboard {
	d := Dashboard{TotalStock: s.store.Len()}
	if last, ok := s.LastResult(); ok {
		d.Found = last.Summary.Found
		d.Missing = last.Summary.Missing
		d.New = last.Summary.New
		at := last.CreatedAt
		d.LastScanAt = &at
		summary := last.Summary
		d.LastScan = &summary
	}
	return d
}

// Close tears down the session.
func (s *Service) Close() {
	s.session.Close()
}
