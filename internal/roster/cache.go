package roster

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"sumo-scraper/internal/components/assert"
	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/sumo"

	"golang.org/x/sync/singleflight"
)

const (
	report_cache_get_or_load = "cache.get-or-load"
)

var ErrCacheClosed = errors.New("roster cache is closed")

// Loader loads the full roster of a division.
type Loader interface {
	Load(ctx context.Context, division sumo.Division) ([]sumo.Wrestler, error)
}

// Cache holds every division roster that has been loaded, for the lifetime of the
// cache. There is no invalidation, a fresh roster needs a fresh cache.
type Cache struct {
	loader Loader
	tel    telemetry.API

	mutex   sync.RWMutex
	rosters map[sumo.Division][]sumo.Wrestler
	closed  bool

	// collapses concurrent first loads of the same division
	inflight singleflight.Group
}

func NewCache(loader Loader, tel telemetry.API) *Cache {
	assert.NotNil(loader)
	assert.NotNil(tel)

	return &Cache{
		loader:  loader,
		tel:     telemetry.NewScopedAPI("roster", tel),
		rosters: make(map[sumo.Division][]sumo.Wrestler),
	}
}

func (c *Cache) cached(division sumo.Division) ([]sumo.Wrestler, bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.closed {
		return nil, false, ErrCacheClosed
	}
	roster, ok := c.rosters[division]
	return roster, ok, nil
}

// GetOrLoad returns the roster of a division, loading it on first use. The returned
// slice is a copy and may be modified by the caller.
func (c *Cache) GetOrLoad(ctx context.Context, division sumo.Division) ([]sumo.Wrestler, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("get roster: invalid division %d", int(division))
	}

	roster, ok, err := c.cached(division)
	if err != nil {
		return nil, err
	}
	if ok {
		return slices.Clone(roster), nil
	}

	result, err, shared := c.inflight.Do(division.String(), func() (any, error) {
		roster, ok, err := c.cached(division)
		if err != nil {
			return nil, err
		}
		if ok {
			return roster, nil
		}

		loaded, err := c.loader.Load(ctx, division)
		if err != nil {
			c.tel.ReportBroken(report_cache_get_or_load, err, division.String())
			return nil, err
		}

		c.mutex.Lock()
		defer c.mutex.Unlock()
		if c.closed {
			return nil, ErrCacheClosed
		}
		c.rosters[division] = loaded
		c.tel.ReportCount(division.String()+".wrestlers", int64(len(loaded)))
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.tel.ReportDebug("joined in-flight roster load", division.String())
	}

	return slices.Clone(result.([]sumo.Wrestler)), nil
}

// Loaded returns the divisions that are currently cached, in hierarchy order.
func (c *Cache) Loaded() []sumo.Division {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var out []sumo.Division
	for _, d := range sumo.Divisions {
		if _, ok := c.rosters[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Close drops every cached roster, any later lookup fails with ErrCacheClosed.
func (c *Cache) Close() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.closed = true
	c.rosters = nil
}
