package item_test

import (
	"testing"

	"showroom-audit/core/item"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	rec := item.Placeholder("NEW_EPC_001")

	assert.Equal(t, "NEW_EPC_001", rec.EPC)
	assert.Equal(t, item.UncataloguedItem, rec.Name)
	assert.Equal(t, item.Unknown, rec.Category)
	assert.Equal(t, item.Unknown, rec.ShowroomArea)
	assert.Equal(t, item.Unknown, rec.CounterName)
	assert.Zero(t, rec.Price)
	assert.Equal(t, "https://picsum.photos/seed/NEW_EPC_001/200", rec.ImageURL)
	assert.True(t, rec.Valid())
}

func TestPlaceholderImage_EmptySeed(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/default/200", item.PlaceholderImage(""))
}

func TestIndex_FirstWins(t *testing.T) {
	records := []item.Record{
		{EPC: "A1", Name: "first"},
		{EPC: "A2", Name: "other"},
		{EPC: "A1", Name: "second"},
	}

	idx := item.Index(records)
	assert.Len(t, idx, 2)
	assert.Equal(t, "first", idx["A1"].Name)
}

func TestFilter(t *testing.T) {
	records := item.Seed()

	tests := []struct {
		name string
		term string
		want int
	}{
		{"Empty term returns all", "", len(records)},
		{"By name ignoring case", "DIAMOND", 2},
		{"By area", "vip lounge", 1},
		{"By counter", "fashion", 4},
		{"By category and name", "rings", 7},
		{"By EPC suffix", "000000014", 1},
		{"No match", "watch", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, item.Filter(records, tt.term), tt.want)
		})
	}
}

func TestSeed_UniqueTags(t *testing.T) {
	records := item.Seed()
	assert.Len(t, records, 15)
	assert.Len(t, item.EPCSet(records), 15)
	for _, r := range records {
		assert.True(t, r.Valid())
	}
}
