package scan

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"showroom-audit/core/item"
	"showroom-audit/core/metrics"
	"showroom-audit/core/reconcile"
	"showroom-audit/core/rfid"

	"go.uber.org/zap"
)

// ErrFinalizing is returned by Finish while another Finish is reconciling.
var ErrFinalizing = errors.New("scan session is being finalized")

// Snapshotter provides the master inventory.
type Snapshotter interface {
	Snapshot() []item.Record
}

// Session collects tag reads for one stock check. It owns the reader
// subscription while active and hands the scanned set to the reconcile
// engine when finished.
type Session struct {
	reader  rfid.Reader
	master  Snapshotter
	history *History
	logger  *zap.Logger

	mu          sync.Mutex
	state       State
	snapshot    []item.Record
	index       map[string]item.Record
	scanned     []item.Record
	seen        map[string]struct{}
	unsubscribe func()
	// run identifies the current Start; a Start that lost a race with
	// Stop or Finish sees a different run and backs out.
	run uint64
	// epoch changes whenever the master snapshot is rebased.
	epoch uint64
}

// NewSession creates an idle session.
func NewSession(reader rfid.Reader, master Snapshotter, history *History, logger *zap.Logger) *Session {
	return &Session{
		reader:  reader,
		master:  master,
		history: history,
		logger:  logger,
		seen:    make(map[string]struct{}),
	}
}

// Start begins a scan against the current master inventory. Calling Start
// while a scan is running does nothing.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		s.logger.Warn("Scan listener is already active", zap.Stringer("state", state))
		return nil
	}
	s.run++
	run := s.run
	s.snapshot = s.master.Snapshot()
	s.index = item.Index(s.snapshot)
	s.scanned = nil
	s.seen = make(map[string]struct{})
	s.state = StateActive
	masterCount := len(s.snapshot)
	s.mu.Unlock()

	unsub := s.reader.Subscribe(s.handle)

	s.mu.Lock()
	if !s.current(run) {
		s.mu.Unlock()
		unsub()
		s.logger.Info("Scan ended before it started")
		return nil
	}
	s.unsubscribe = unsub
	s.mu.Unlock()

	if err := s.reader.Initialize(ctx); err != nil {
		s.abort(run)
		return fmt.Errorf("failed to initialize reader: %w", err)
	}
	if err := s.reader.StartScan(ctx); err != nil {
		s.abort(run)
		return fmt.Errorf("failed to start scan: %w", err)
	}

	s.mu.Lock()
	ended := !s.current(run)
	idle := s.state != StateActive
	s.mu.Unlock()
	if ended {
		// Stop already ran; keep the reader off unless a newer scan owns it.
		if idle {
			if err := s.reader.StopScan(ctx); err != nil {
				s.logger.Warn("Reader did not stop cleanly", zap.Error(err))
			}
		}
		s.logger.Info("Scan ended before it started")
		return nil
	}

	s.logger.Info("Scan started", zap.Int("master_items", masterCount))
	return nil
}

// current reports whether run is still the active scan. s.mu must be held.
func (s *Session) current(run uint64) bool {
	return s.state == StateActive && s.run == run
}

// Stop pauses collection. Scanned items are kept until Finish. Calling Stop
// on an idle session does nothing.
func (s *Session) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return nil
	}
	s.state = StateIdle
	unsub := s.unsubscribe
	s.unsubscribe = nil
	count := len(s.scanned)
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	s.logger.Info("Scan stopped", zap.Int("scanned", count))
	if err := s.reader.StopScan(ctx); err != nil {
		return fmt.Errorf("failed to stop scan: %w", err)
	}
	return nil
}

// Finish stops the scan, reconciles the scanned items against the master
// snapshot, records the result in history and resets the session. If the
// master is rebased while reconciling, the result is computed again against
// the new snapshot.
func (s *Session) Finish(ctx context.Context) (Entry, error) {
	if err := s.Stop(ctx); err != nil {
		s.logger.Warn("Reader did not stop cleanly", zap.Error(err))
	}

	s.mu.Lock()
	if s.state == StateFinalizing {
		s.mu.Unlock()
		return Entry{}, ErrFinalizing
	}
	s.state = StateFinalizing
	s.mu.Unlock()

	var (
		entry  Entry
		result reconcile.ScanResult
	)
	for {
		s.mu.Lock()
		epoch := s.epoch
		master := s.snapshot
		if master == nil {
			master = s.master.Snapshot()
		}
		scanned := make([]item.Record, len(s.scanned))
		copy(scanned, s.scanned)
		s.mu.Unlock()

		result = reconcile.Reconcile(master, scanned)

		s.mu.Lock()
		if s.epoch != epoch {
			s.mu.Unlock()
			continue
		}
		entry = s.history.Append(result)
		s.state = StateIdle
		s.snapshot = nil
		s.index = nil
		s.scanned = nil
		s.seen = make(map[string]struct{})
		s.mu.Unlock()
		break
	}

	metrics.ScanSessions.Inc()
	metrics.LastScanResults.WithLabelValues(string(reconcile.CategoryFound)).Set(float64(len(result.Found)))
	metrics.LastScanResults.WithLabelValues(string(reconcile.CategoryMissing)).Set(float64(len(result.Missing)))
	metrics.LastScanResults.WithLabelValues(string(reconcile.CategoryNew)).Set(float64(len(result.New)))

	s.logger.Info("Scan finished",
		zap.Int64("entry_id", entry.ID),
		zap.Int("found", len(result.Found)),
		zap.Int("missing", len(result.Missing)),
		zap.Int("new", len(result.New)),
	)
	return entry, nil
}

// Rebase points a pending scan at a new master inventory. Scanned tags are
// looked up again, so items that became known stop being placeholders. An
// idle session with nothing pending is unaffected.
func (s *Session) Rebase(master []item.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.snapshot == nil {
		return
	}
	s.snapshot = master
	s.index = item.Index(master)
	for i, rec := range s.scanned {
		if known, ok := s.index[rec.EPC]; ok {
			s.scanned[i] = known
		} else {
			s.scanned[i] = item.Placeholder(rec.EPC)
		}
	}
	s.logger.Info("Scan rebased on new master inventory",
		zap.Int("master_items", len(master)),
		zap.Int("scanned", len(s.scanned)),
	)
}

// Close releases the reader subscription regardless of state.
func (s *Session) Close() {
	s.mu.Lock()
	unsub := s.unsubscribe
	s.unsubscribe = nil
	wasActive := s.state == StateActive
	s.state = StateIdle
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	if wasActive {
		if err := s.reader.StopScan(context.Background()); err != nil {
			s.logger.Warn("Reader did not stop cleanly", zap.Error(err))
		}
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Scanned returns a copy of the scanned items in first-seen order.
func (s *Session) Scanned() []item.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]item.Record, len(s.scanned))
	copy(out, s.scanned)
	return out
}

// Count returns the number of distinct tags scanned.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scanned)
}

func (s *Session) handle(ev rfid.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive || ev.EPC == "" {
		metrics.TagEvents.WithLabelValues(metrics.OutcomeIgnored).Inc()
		return
	}
	if _, dup := s.seen[ev.EPC]; dup {
		metrics.TagEvents.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return
	}

	rec, ok := s.index[ev.EPC]
	if ok {
		metrics.TagEvents.WithLabelValues(metrics.OutcomeMatched).Inc()
	} else {
		rec = item.Placeholder(ev.EPC)
		metrics.TagEvents.WithLabelValues(metrics.OutcomePlaceholder).Inc()
	}
	s.seen[ev.EPC] = struct{}{}
	s.scanned = append(s.scanned, rec)
}

func (s *Session) abort(run uint64) {
	s.mu.Lock()
	if s.run != run {
		s.mu.Unlock()
		return
	}
	unsub := s.unsubscribe
	s.unsubscribe = nil
	if s.state == StateActive {
		s.state = StateIdle
	}
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
