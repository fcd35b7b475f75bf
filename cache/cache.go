package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/config"
	"github.com/monkeytypegame/monkeytype-redirects/model"
)

// Cache is an in-process hot-path cache for hostname -> config resolution.
// Configs are immutable once created, so cached entries can never go stale;
// the TTL only bounds memory held for hostnames that stop receiving traffic.
type Cache struct {
	client *ristretto.Cache
	ttl    time.Duration
}

// New creates a new cache instance with the given configuration
func New(cfg config.CacheConfig) (*Cache, error) {
	maxCost := int64(cfg.MaxSizeMB) * 1024 * 1024

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CounterSize), // keys tracked for admission frequency
		MaxCost:     maxCost,                // maximum cache size in bytes
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("max_size_mb", cfg.MaxSizeMB).
		Int("ttl_seconds", cfg.TTLSeconds).
		Msg("Config cache initialized")

	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

// GetConfig returns the cached config for a normalized hostname
func (c *Cache) GetConfig(hostname string) (*model.RedirectConfig, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	value, found := c.client.Get(hostname)
	if !found {
		return nil, false
	}
	cfg, ok := value.(model.RedirectConfig)
	if !ok {
		return nil, false
	}
	return &cfg, true
}

// SetConfig caches a resolved config under its normalized hostname
func (c *Cache) SetConfig(hostname string, cfg model.RedirectConfig) {
	if c == nil || c.client == nil {
		return
	}
	c.client.SetWithTTL(hostname, cfg, 1, c.ttl)
}

// Wait blocks until buffered writes have been applied
func (c *Cache) Wait() {
	if c != nil && c.client != nil {
		c.client.Wait()
	}
}

// Metrics returns cache performance counters
func (c *Cache) Metrics() *ristretto.Metrics {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Metrics
}

// Close cleanly shuts down the cache
func (c *Cache) Close() {
	if c != nil && c.client != nil {
		c.client.Close()
		log.Info().Msg("Config cache closed")
	}
}
