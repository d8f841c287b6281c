package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"showroom-audit/core/item"
	"showroom-audit/core/reconcile"
	"showroom-audit/feature/export"
	"showroom-audit/feature/inventory/csvimport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []item.Record {
	return []item.Record{
		{
			EPC:          "E1",
			Name:         "Gold Ring",
			ImageURL:     "https://example.com/ring.jpg",
			ShowroomArea: "Main Hall",
			CounterName:  "Counter A",
			Price:        12500,
			Category:     "Rings",
			GrossWeight:  item.Float(12.5),
			NetWeight:    item.Float(11),
			Remarks:      item.String(`Needs "polish", soon`),
		},
		{
			EPC:          "E2",
			Name:         "Pendant",
			ImageURL:     item.PlaceholderImage("E2"),
			ShowroomArea: item.Unknown,
			CounterName:  item.Unknown,
			Price:        0,
			Category:     item.Unknown,
		},
	}
}

func TestWrite_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, nil)

	assert.ErrorIs(t, err, export.ErrEmptyExportSet)
	assert.Zero(t, buf.Len())
}

func TestWrite_HeaderAndRows(t *testing.T) {
	data, err := export.Render(sampleRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(export.Columns, ","), lines[0])
	assert.Len(t, export.Columns, 26)

	assert.Equal(t,
		`https://example.com/ring.jpg,E1,Gold Ring,,,12.5,11,,,,,"Needs ""polish"", soon",,,,12500,,,,,,,,,Main Hall,Counter A`,
		lines[1])
	assert.Equal(t,
		"https://picsum.photos/seed/E2/200,E2,Pendant,,,,,,,,,,,,,0,,,,,,,,,Unknown,Unknown",
		lines[2])
}

func TestWrite_RoundTripsThroughImport(t *testing.T) {
	data, err := export.Render(sampleRecords())
	require.NoError(t, err)

	records, err := csvimport.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, "E1", got.EPC)
	assert.Equal(t, "Gold Ring", got.Name)
	assert.Equal(t, 12500.0, got.Price)
	require.NotNil(t, got.GrossWeight)
	assert.Equal(t, 12.5, *got.GrossWeight)
	require.NotNil(t, got.Remarks)
	assert.Equal(t, `Needs "polish", soon`, *got.Remarks)
	assert.Nil(t, got.Design)
	assert.Equal(t, "Main Hall", got.ShowroomArea)

	// The export format has no category column.
	assert.Equal(t, item.Unknown, got.Category)
	assert.Equal(t, 0.0, records[1].Price)
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "missing_items_report.csv", export.SessionFilename(reconcile.CategoryMissing))
	assert.Equal(t, "new_items_report.csv", export.SessionFilename(reconcile.CategoryNew))

	at := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "missing_items_2024-03-09_1710027000000.csv", export.HistoryFilename(at.UnixMilli(), at))
}

func TestExportable(t *testing.T) {
	assert.True(t, export.Exportable(reconcile.CategoryMissing))
	assert.True(t, export.Exportable(reconcile.CategoryNew))
	assert.False(t, export.Exportable(reconcile.CategoryFound))
}
