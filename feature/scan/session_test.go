package scan_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"showroom-audit/core/item"
	"showroom-audit/core/rfid"
	"showroom-audit/core/rfid/mocks"
	"showroom-audit/feature/inventory"
	"showroom-audit/feature/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func masterRecords() []item.Record {
	return []item.Record{
		{EPC: "M1", Name: "Gold Ring", Price: 100},
		{EPC: "M2", Name: "Silver Chain", Price: 50},
	}
}

func newSession(t *testing.T) (*scan.Session, *rfid.Bridge, *scan.History) {
	t.Helper()
	bridge := rfid.NewBridge(zap.NewNop())
	history := scan.NewHistory(0)
	store := inventory.NewStore(masterRecords())
	return scan.NewSession(bridge, store, history, zap.NewNop()), bridge, history
}

func TestSession_DuplicateTagKeepsFirst(t *testing.T) {
	session, bridge, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	assert.Equal(t, scan.StateActive, session.State())

	bridge.Publish(rfid.Event{EPC: "M1", RSSI: -40})
	bridge.Publish(rfid.Event{EPC: "X9", RSSI: -60})
	bridge.Publish(rfid.Event{EPC: "M1", RSSI: -35})

	scanned := session.Scanned()
	require.Len(t, scanned, 2)
	assert.Equal(t, "M1", scanned[0].EPC)
	assert.Equal(t, "Gold Ring", scanned[0].Name)
	assert.Equal(t, item.Placeholder("X9"), scanned[1])
	assert.Equal(t, 2, session.Count())
}

func TestSession_Finish(t *testing.T) {
	session, bridge, history := newSession(t)
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	bridge.Publish(rfid.Event{EPC: "X9"})
	bridge.Publish(rfid.Event{EPC: "M1"})

	entry, err := session.Finish(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"M1"}, epcs(entry.Result.Found))
	assert.Equal(t, []string{"M2"}, epcs(entry.Result.Missing))
	assert.Equal(t, []string{"X9"}, epcs(entry.Result.New))
	assert.Equal(t, 1, entry.Summary.Found)

	assert.Equal(t, scan.StateIdle, session.State())
	assert.Zero(t, session.Count())
	assert.Equal(t, 1, history.Len())
	assert.False(t, bridge.Scanning())
}

func TestSession_StartTwiceIsNoop(t *testing.T) {
	session, bridge, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	bridge.Publish(rfid.Event{EPC: "M1"})

	require.NoError(t, session.Start(ctx))
	assert.Equal(t, 1, session.Count(), "second start must not reset the scanned set")

	// Only one subscription exists, so one event yields one record.
	bridge.Publish(rfid.Event{EPC: "M2"})
	assert.Equal(t, 2, session.Count())
}

func TestSession_StopIdleIsNoop(t *testing.T) {
	reader := new(mocks.Reader)
	session := scan.NewSession(reader, inventory.NewStore(nil), scan.NewHistory(0), zap.NewNop())

	require.NoError(t, session.Stop(context.Background()))
	reader.AssertNotCalled(t, "StopScan", mock.Anything)
}

func TestSession_StopKeepsScannedAndIgnoresLateEvents(t *testing.T) {
	session, bridge, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	bridge.Publish(rfid.Event{EPC: "M1"})
	require.NoError(t, session.Stop(ctx))

	assert.Equal(t, scan.StateIdle, session.State())
	assert.Equal(t, 1, session.Count())

	// Even if the reader keeps reporting, the session has unsubscribed.
	require.NoError(t, bridge.StartScan(ctx))
	bridge.Publish(rfid.Event{EPC: "M2"})
	assert.Equal(t, 1, session.Count())
}

func TestSession_FinishAfterStop(t *testing.T) {
	session, bridge, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	bridge.Publish(rfid.Event{EPC: "M2"})
	require.NoError(t, session.Stop(ctx))

	entry, err := session.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"M2"}, epcs(entry.Result.Found))
}

func TestSession_FinishWithoutStart(t *testing.T) {
	session, _, _ := newSession(t)

	entry, err := session.Finish(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entry.Result.Found)
	assert.Equal(t, []string{"M1", "M2"}, epcs(entry.Result.Missing))
	assert.Empty(t, entry.Result.New)
}

func TestSession_SnapshotTakenAtStart(t *testing.T) {
	bridge := rfid.NewBridge(zap.NewNop())
	store := inventory.NewStore(masterRecords())
	session := scan.NewSession(bridge, store, scan.NewHistory(0), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	store.Replace([]item.Record{{EPC: "Z1"}})
	bridge.Publish(rfid.Event{EPC: "M1"})

	entry, err := session.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, epcs(entry.Result.Found))
	assert.Equal(t, []string{"M2"}, epcs(entry.Result.Missing))
}

func TestSession_StartFailureRollsBack(t *testing.T) {
	unsubscribed := false
	reader := new(mocks.Reader)
	reader.On("Subscribe", mock.Anything).Return(func() { unsubscribed = true })
	reader.On("Initialize", mock.Anything).Return(nil)
	reader.On("StartScan", mock.Anything).Return(errors.New("antenna offline"))

	session := scan.NewSession(reader, inventory.NewStore(masterRecords()), scan.NewHistory(0), zap.NewNop())

	err := session.Start(context.Background())
	assert.ErrorContains(t, err, "antenna offline")
	assert.Equal(t, scan.StateIdle, session.State())
	assert.True(t, unsubscribed)
}

func TestSession_Close(t *testing.T) {
	unsubscribed := 0
	reader := new(mocks.Reader)
	reader.On("Subscribe", mock.Anything).Return(func() { unsubscribed++ })
	reader.On("Initialize", mock.Anything).Return(nil)
	reader.On("StartScan", mock.Anything).Return(nil)
	reader.On("StopScan", mock.Anything).Return(nil)

	session := scan.NewSession(reader, inventory.NewStore(nil), scan.NewHistory(0), zap.NewNop())
	require.NoError(t, session.Start(context.Background()))

	session.Close()
	session.Close()

	assert.Equal(t, 1, unsubscribed)
	assert.Equal(t, scan.StateIdle, session.State())
	reader.AssertNumberOfCalls(t, "StopScan", 1)
}

// countingReader is a Bridge that tracks live subscriptions and can run a
// hook from inside Subscribe.
type countingReader struct {
	*rfid.Bridge

	mu          sync.Mutex
	live        int
	onSubscribe func()
}

func (r *countingReader) Subscribe(h rfid.Handler) func() {
	unsub := r.Bridge.Subscribe(h)

	r.mu.Lock()
	r.live++
	hook := r.onSubscribe
	r.onSubscribe = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			r.live--
			r.mu.Unlock()
			unsub()
		})
	}
}

func (r *countingReader) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

func TestSession_FinishDuringStartReleasesSubscription(t *testing.T) {
	reader := &countingReader{Bridge: rfid.NewBridge(zap.NewNop())}
	history := scan.NewHistory(0)
	session := scan.NewSession(reader, inventory.NewStore(masterRecords()), history, zap.NewNop())
	ctx := context.Background()

	reader.onSubscribe = func() {
		_, err := session.Finish(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, session.Start(ctx))
	assert.Equal(t, scan.StateIdle, session.State())
	assert.Equal(t, 0, reader.Live())
	assert.False(t, reader.Scanning())
	assert.Equal(t, 1, history.Len())

	require.NoError(t, session.Start(ctx))
	assert.Equal(t, scan.StateActive, session.State())
	assert.Equal(t, 1, reader.Live())
	assert.True(t, reader.Publish(rfid.Event{EPC: "M1"}))
	assert.Equal(t, 1, session.Count())

	session.Close()
	assert.Equal(t, 0, reader.Live())
	assert.Equal(t, scan.StateIdle, session.State())
}

func TestSession_StopDuringStartReleasesSubscription(t *testing.T) {
	reader := &countingReader{Bridge: rfid.NewBridge(zap.NewNop())}
	session := scan.NewSession(reader, inventory.NewStore(masterRecords()), scan.NewHistory(0), zap.NewNop())
	ctx := context.Background()

	reader.onSubscribe = func() {
		require.NoError(t, session.Stop(ctx))
	}

	require.NoError(t, session.Start(ctx))
	assert.Equal(t, scan.StateIdle, session.State())
	assert.Equal(t, 0, reader.Live())
	assert.False(t, reader.Scanning())
}

func TestSession_RebaseResolvesScannedAgainstNewMaster(t *testing.T) {
	session, bridge, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, session.Start(ctx))
	bridge.Publish(rfid.Event{EPC: "M1"})
	bridge.Publish(rfid.Event{EPC: "Z1"})
	require.Equal(t, item.UncataloguedItem, session.Scanned()[1].Name)

	session.Rebase([]item.Record{
		{EPC: "M1", Name: "Gold Ring v2", Price: 120},
		{EPC: "Z1", Name: "Emerald Pendant", Price: 300},
		{EPC: "Z2", Name: "Ruby Bangle", Price: 90},
	})

	scanned := session.Scanned()
	assert.Equal(t, "Gold Ring v2", scanned[0].Name)
	assert.Equal(t, "Emerald Pendant", scanned[1].Name)

	entry, err := session.Finish(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "Z1"}, epcs(entry.Result.Found))
	assert.Equal(t, []string{"Z2"}, epcs(entry.Result.Missing))
	assert.Empty(t, entry.Result.New)
}

func TestSession_RebaseIdleIsNoop(t *testing.T) {
	session, _, _ := newSession(t)

	session.Rebase([]item.Record{{EPC: "Z1"}})

	assert.Equal(t, scan.StateIdle, session.State())
	assert.Empty(t, session.Scanned())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", scan.StateIdle.String())
	assert.Equal(t, "active", scan.StateActive.String())
	assert.Equal(t, "finalizing", scan.StateFinalizing.String())

	text, err := scan.StateActive.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "active", string(text))
}

func epcs(records []item.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.EPC)
	}
	return out
}
