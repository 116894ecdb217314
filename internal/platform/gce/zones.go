package gce

import (
	"context"
	"fmt"
	"sync"
)

// zoneCache fetches the zone list once and treats it as immutable for the
// adapter's lifetime. Zones are reference data; the only shared state
// across concurrent lifecycle calls is this read-only map. A failed fetch
// is not cached, so a transient listing error does not poison the adapter.
type zoneCache struct {
	api ZoneAPI

	mu    sync.Mutex
	zones []*Zone
}

func newZoneCache(api ZoneAPI) *zoneCache {
	return &zoneCache{api: api}
}

func (c *zoneCache) get(ctx context.Context) ([]*Zone, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.zones != nil {
		return c.zones, nil
	}

	zones, err := c.api.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	c.zones = zones
	return zones, nil
}
