package export_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"showroom-audit/feature/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_RendersOnce(t *testing.T) {
	cache := export.NewCache(4, time.Minute)
	var calls atomic.Int32

	render := func() ([]byte, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		return []byte("csv"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := cache.GetOrRender("1/missing", render)
			assert.NoError(t, err)
			assert.Equal(t, "csv", string(data))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	cache := export.NewCache(4, time.Minute)

	_, err := cache.GetOrRender("1/new", func() ([]byte, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	assert.Zero(t, cache.Len())

	data, err := cache.GetOrRender("1/new", func() ([]byte, error) {
		return []byte("ok"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestCache_Purge(t *testing.T) {
	cache := export.NewCache(4, time.Minute)
	_, err := cache.GetOrRender("1/missing", func() ([]byte, error) { return []byte("a"), nil })
	require.NoError(t, err)

	cache.Purge()
	assert.Zero(t, cache.Len())
}
