// Package cache memoizes REST Countries queries.
//
// Each query shape gets its own cache key; entries expire after a staleness
// window (an hour for dataset queries, five minutes for remote name search).
// Identical in-flight requests are coalesced so N concurrent consumers of
// one key cost one network call. Failures are returned to the caller and
// never cached, so the next access retries.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"atlascope/internal/country"
)

// DefaultTTL is the staleness window for all/region/codes queries.
const DefaultTTL = time.Hour

// DefaultSearchTTL is the staleness window for remote name search.
const DefaultSearchTTL = 5 * time.Minute

// Fetcher is the client-side query surface the cache wraps.
// *restcountries.Client satisfies it.
type Fetcher interface {
	All(ctx context.Context) ([]country.Country, error)
	ByRegion(ctx context.Context, region string) ([]country.Country, error)
	ByCodes(ctx context.Context, codes []string) ([]country.Country, error)
	SearchByName(ctx context.Context, query string) ([]country.Country, error)
}

type entry struct {
	countries []country.Country
	fetched   time.Time
}

// Cache memoizes Fetcher results by query key.
// Safe for concurrent use.
type Cache struct {
	client    Fetcher
	ttl       time.Duration
	searchTTL time.Duration

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]entry

	now func() time.Time // injectable for tests
}

// New creates a Cache around client. Zero durations select the defaults.
func New(client Fetcher, ttl, searchTTL time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if searchTTL <= 0 {
		searchTTL = DefaultSearchTTL
	}
	return &Cache{
		client:    client,
		ttl:       ttl,
		searchTTL: searchTTL,
		entries:   make(map[string]entry),
		now:       time.Now,
	}
}

// All returns the full country list, memoized.
func (c *Cache) All(ctx context.Context) ([]country.Country, error) {
	return c.get(ctx, "all", c.ttl, c.client.All)
}

// ByRegion returns countries for one region, memoized per region.
func (c *Cache) ByRegion(ctx context.Context, region string) ([]country.Country, error) {
	return c.get(ctx, "region:"+region, c.ttl, func(ctx context.Context) ([]country.Country, error) {
		return c.client.ByRegion(ctx, region)
	})
}

// ByCodes returns countries for an explicit code list, memoized per list.
// An empty list short-circuits without touching cache or network.
func (c *Cache) ByCodes(ctx context.Context, codes []string) ([]country.Country, error) {
	if len(codes) == 0 {
		return []country.Country{}, nil
	}
	key := "codes:" + strings.Join(codes, ",")
	return c.get(ctx, key, c.ttl, func(ctx context.Context) ([]country.Country, error) {
		return c.client.ByCodes(ctx, codes)
	})
}

// Search runs a remote name search, memoized with the shorter window.
func (c *Cache) Search(ctx context.Context, query string) ([]country.Country, error) {
	return c.get(ctx, "search:"+query, c.searchTTL, func(ctx context.Context) ([]country.Country, error) {
		return c.client.SearchByName(ctx, query)
	})
}

func (c *Cache) get(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) ([]country.Country, error)) ([]country.Country, error) {
	if cached, ok := c.fresh(key, ttl); ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A waiter queued behind the flight may arrive after the entry
		// was just populated; re-check before fetching again.
		if cached, ok := c.fresh(key, ttl); ok {
			return cached, nil
		}

		countries, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{countries: countries, fetched: c.now()}
		c.mu.Unlock()
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]country.Country), nil
}

// fresh returns the cached value for key if it is within its window.
func (c *Cache) fresh(key string, ttl time.Duration) ([]country.Country, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetched) >= ttl {
		return nil, false
	}
	return e.countries, true
}
