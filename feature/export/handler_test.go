package export_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showroom-audit/core/item"
	"showroom-audit/core/rfid"
	"showroom-audit/feature/export"
	"showroom-audit/feature/inventory"
	"showroom-audit/feature/scan"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	app    *fiber.App
	scans  *scan.Service
	bridge *rfid.Bridge
	store  *inventory.Store
	svc    *export.Service
	dir    string
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()
	store := inventory.NewStore([]item.Record{
		{EPC: "M1", Name: "Gold Ring", Price: 100},
		{EPC: "M2", Name: "Silver Chain", Price: 50},
	})
	bridge := rfid.NewBridge(zap.NewNop())
	scans := scan.NewService(store, bridge, zap.NewNop(), scan.Config{})
	t.Cleanup(scans.Close)

	dir := t.TempDir()
	svc := export.NewService(scans, zap.NewNop(), export.Config{Dir: dir, CacheSize: 8, CacheTTLSeconds: 60}, nil, "")

	app := fiber.New()
	feature := export.NewFeature(svc)
	assert.Equal(t, "export", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	return &testEnv{app: app, scans: scans, bridge: bridge, store: store, svc: svc, dir: dir}
}

// finish runs a scan that reads the given tags.
func (e *testEnv) finish(t *testing.T, epcs ...string) scan.Entry {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.scans.Start(ctx))
	for _, epc := range epcs {
		e.bridge.Publish(rfid.Event{EPC: epc})
	}
	entry, err := e.scans.Finish(ctx)
	require.NoError(t, err)
	return entry
}

func TestDownloadReport(t *testing.T) {
	env := setupTestApp(t)
	env.finish(t, "M1", "X9")

	resp, err := env.app.Test(httptest.NewRequest("GET", "/report/missing/export", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `attachment; filename="missing_items_report.csv"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "M2,Silver Chain")

	resp, err = env.app.Test(httptest.NewRequest("GET", "/report/new/export", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "X9,Uncatalogued Item")
}

func TestDownloadReport_Errors(t *testing.T) {
	env := setupTestApp(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"No report yet", "/report/missing/export", 404},
		{"Unknown category", "/report/lost/export", 400},
		{"Found is not exportable", "/report/found/export", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestExport_EmptySetReturnsNotice(t *testing.T) {
	env := setupTestApp(t)
	env.finish(t, "M1", "M2")

	for _, method := range []string{"GET", "POST"} {
		resp, err := env.app.Test(httptest.NewRequest(method, "/report/missing/export", nil))
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "No items to export.", body["notice"])
	}

	entries, err := os.ReadDir(env.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveReport_FileSink(t *testing.T) {
	env := setupTestApp(t)
	env.finish(t, "M1")

	resp, err := env.app.Test(httptest.NewRequest("POST", "/report/missing/export?sink=file", nil))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var receipt export.Receipt
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
	assert.Equal(t, "missing_items_report.csv", receipt.Filename)
	assert.Equal(t, 1, receipt.Count)
	assert.FileExists(t, filepath.Join(env.dir, "missing_items_report.csv"))
}

func TestSaveReport_ObjectSinkNotConfigured(t *testing.T) {
	env := setupTestApp(t)
	env.finish(t, "M1")

	resp, err := env.app.Test(httptest.NewRequest("POST", "/report/missing/export?sink=object", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHistoryExport(t *testing.T) {
	env := setupTestApp(t)
	entry := env.finish(t)

	target := fmt.Sprintf("/history/%d/export", entry.ID)
	resp, err := env.app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t,
		fmt.Sprintf(`attachment; filename="%s"`, export.HistoryFilename(entry.ID, entry.CreatedAt)),
		resp.Header.Get("Content-Disposition"))

	body, _ := io.ReadAll(resp.Body)
	assert.Len(t, strings.Split(strings.TrimRight(string(body), "\n"), "\n"), 3)
	assert.Equal(t, 1, env.svc.Cache().Len())

	resp, err = env.app.Test(httptest.NewRequest("POST", target, nil))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest("GET", "/history/1/export", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest("GET", "/history/abc/export", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHistoryClearPurgesCache(t *testing.T) {
	env := setupTestApp(t)
	entry := env.finish(t)

	_, err := env.svc.HistoryCSV(entry.ID)
	require.NoError(t, err)
	require.Equal(t, 1, env.svc.Cache().Len())

	env.store.Replace([]item.Record{{EPC: "N1"}})
	assert.Zero(t, env.svc.Cache().Len())
}

func TestSinks(t *testing.T) {
	env := setupTestApp(t)

	var sinks []string
	resp, err := env.app.Test(httptest.NewRequest("GET", "/exports/sinks", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sinks))
	assert.Equal(t, []string{"file"}, sinks)
}
