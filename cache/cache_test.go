package cache

import (
	"testing"
	"time"

	"github.com/monkeytypegame/monkeytype-redirects/config"
	"github.com/monkeytypegame/monkeytype-redirects/model"
)

func testCache(t *testing.T) *Cache {
	t.Helper()

	c, err := New(config.CacheConfig{
		Enabled:     true,
		MaxSizeMB:   1,
		TTLSeconds:  60,
		CounterSize: 1000,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestCache_SetAndGet(t *testing.T) {
	c := testCache(t)

	cfg := model.RedirectConfig{
		UUID:      "id-1",
		Source:    "typo.com",
		Target:    "https://good.example/",
		CreatedAt: time.Now(),
	}

	c.SetConfig("typo.com", cfg)
	c.Wait()

	got, found := c.GetConfig("typo.com")
	if !found {
		t.Fatal("GetConfig() miss after SetConfig()")
	}
	if got.UUID != cfg.UUID || got.Target != cfg.Target {
		t.Errorf("GetConfig() = %+v, want %+v", got, cfg)
	}
}

func TestCache_Miss(t *testing.T) {
	c := testCache(t)

	if _, found := c.GetConfig("unknown.com"); found {
		t.Error("GetConfig() hit for a hostname never cached")
	}
}

func TestCache_NilSafe(t *testing.T) {
	var c *Cache

	// A disabled cache is a nil pointer everywhere in the handler path
	if _, found := c.GetConfig("typo.com"); found {
		t.Error("nil cache reported a hit")
	}
	c.SetConfig("typo.com", model.RedirectConfig{})
	c.Wait()
	if c.Metrics() != nil {
		t.Error("nil cache returned metrics")
	}
	c.Close()
}
