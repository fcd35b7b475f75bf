package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/monkeytypegame/monkeytype-redirects/auth"
	"github.com/monkeytypegame/monkeytype-redirects/cache"
	"github.com/monkeytypegame/monkeytype-redirects/config"
	"github.com/monkeytypegame/monkeytype-redirects/store"
	"github.com/monkeytypegame/monkeytype-redirects/tester"
)

// Handler bundles the HTTP handlers with their injected dependencies. Every
// store is passed in explicitly so tests can run against miniredis without
// touching global state.
type Handler struct {
	configs *store.ConfigStore
	stats   *store.StatsStore
	users   *store.UserStore
	cache   *cache.Cache
	tester  *tester.Tester
	jwt     *auth.JWTManager
	redis   *redis.Client
	config  config.Config
}

// New creates the handler set
func New(
	configs *store.ConfigStore,
	stats *store.StatsStore,
	users *store.UserStore,
	cacheClient *cache.Cache,
	redirectTester *tester.Tester,
	jwtManager *auth.JWTManager,
	rdb *redis.Client,
	cfg config.Config,
) *Handler {
	return &Handler{
		configs: configs,
		stats:   stats,
		users:   users,
		cache:   cacheClient,
		tester:  redirectTester,
		jwt:     jwtManager,
		redis:   rdb,
		config:  cfg,
	}
}

// opContext derives a store-operation context from the request
func (h *Handler) opContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
}
