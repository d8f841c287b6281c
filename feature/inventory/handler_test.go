package inventory_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"showroom-audit/core/item"
	"showroom-audit/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *inventory.Store) {
	app := fiber.New()
	svc, store := newService(nil, nil)
	feature := inventory.NewFeature(svc)
	assert.Equal(t, "inventory", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, store
}

func TestHandleImport_Multipart(t *testing.T) {
	app, store := setupTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "inventory.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/inventory/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report inventory.ImportReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, 3, store.Len())
}

func TestHandleImport_RawBody(t *testing.T) {
	app, store := setupTestApp(t)

	req := httptest.NewRequest("POST", "/inventory/import", strings.NewReader(sampleCSV))
	req.Header.Set("Content-Type", "text/csv")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 3, store.Len())
}

func TestHandleImport_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"TooShort", "Tag No,Item Name,Mrp\n", 400, "header row and at least one data row"},
		{"MissingHeader", "Tag No,Item Name\nE1,Ring\n", 400, `"mrp"`},
		{"NoValidItems", "Tag No,Item Name,Mrp\n,Ring,1\n", 422, "No valid items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, store := setupTestApp(t)
			req := httptest.NewRequest("POST", "/inventory/import", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "text/csv")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body["error"], tt.msg)
			assert.Equal(t, 15, store.Len())
		})
	}
}

func TestHandleImportSources_Unavailable(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, target := range []string{"/inventory/import/object?name=a.csv", "/inventory/import/database"} {
		resp, err := app.Test(httptest.NewRequest("POST", target, nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode, target)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/import/objects", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory?q=diamond", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []item.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 2)
}

func TestHandleGetAndStats(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/300833B2DDD9014000000000", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/inventory/UNKNOWN", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/inventory/stats", nil))
	require.NoError(t, err)
	var stats map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, float64(15), stats["total_items"])
	assert.Equal(t, "22950", stats["total_value"])
}
