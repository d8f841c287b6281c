package export

import (
	"time"

	"showroom-audit/core/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Cache holds rendered reports keyed by "<entryID>/<category>".
// Concurrent misses for the same key render once.
type Cache struct {
	lru *expirable.LRU[string, []byte]
	sf  singleflight.Group
}

// NewCache creates a cache holding at most size reports for ttl.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 1
	}
	return &Cache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

// GetOrRender returns the cached report for key, calling render on a miss.
// Errors are not cached.
func (c *Cache) GetOrRender(key string, render func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.lru.Get(key); ok {
		metrics.ExportCache.WithLabelValues(metrics.ResultHit).Inc()
		return data, nil
	}
	metrics.ExportCache.WithLabelValues(metrics.ResultMiss).Inc()

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the flight.
		if data, ok := c.lru.Get(key); ok {
			return data, nil
		}
		data, err := render()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Len returns the number of cached reports.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached report.
func (c *Cache) Purge() {
	c.lru.Purge()
}
