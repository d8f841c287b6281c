package inventory_test

import (
	"testing"

	"showroom-audit/core/item"
	"showroom-audit/feature/inventory"

	"github.com/stretchr/testify/assert"
)

func TestStore_ReplaceNotifies(t *testing.T) {
	store := inventory.NewStore(nil)
	assert.Empty(t, store.Snapshot())

	var sizes []int
	store.OnReplace(func(n int) { sizes = append(sizes, n) })

	store.Replace(item.Seed())
	store.Replace([]item.Record{{EPC: "A"}})

	assert.Equal(t, []int{15, 1}, sizes)
	assert.Equal(t, 1, store.Len())
}

func TestStore_SnapshotIsStable(t *testing.T) {
	input := []item.Record{{EPC: "A"}, {EPC: "B"}}
	store := inventory.NewStore(input)

	snap := store.Snapshot()
	input[0].EPC = "changed"
	store.Replace([]item.Record{{EPC: "C"}})

	assert.Equal(t, "A", snap[0].EPC)
	assert.Len(t, snap, 2)
	assert.Equal(t, "C", store.Snapshot()[0].EPC)
}
