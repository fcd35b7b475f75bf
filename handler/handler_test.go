package handler

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/monkeytypegame/monkeytype-redirects/auth"
	"github.com/monkeytypegame/monkeytype-redirects/config"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/tester"
)

// setupHandler builds a full handler set on a fresh miniredis
func setupHandler(t *testing.T, mode string) (*Handler, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := config.Config{
		Mode: mode,
		Redis: config.RedisConfig{
			OperationTimeout: 5,
		},
		Tester: config.TesterConfig{
			TimeoutSeconds: 1,
			DevPort:        "3000",
		},
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	redirectTester := tester.New(cfg.Tester, cfg.Production())

	h := New(
		store.NewConfigStore(client),
		store.NewStatsStore(client),
		store.NewUserStore(client),
		nil, // cache disabled in tests
		redirectTester,
		jwtManager,
		client,
		cfg,
	)
	return h, s
}

// statsKeys counts stats records present in the store
func statsKeys(s *miniredis.Miniredis) int {
	count := 0
	for _, key := range s.Keys() {
		if len(key) > 6 && key[:6] == "stats:" {
			count++
		}
	}
	return count
}
