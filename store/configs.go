package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/monkeytypegame/monkeytype-redirects/model"
)

const (
	configKeyPrefix = "config:"     // config:{uuid} -> JSON RedirectConfig
	sourceIndexKey  = "config_index" // Redis hash: source hostname -> uuid
)

// ConfigStore persists redirect configurations in Redis. Source uniqueness
// is enforced by the store itself: creation claims the source in the index
// hash with HSETNX, so two racing creates can never both succeed.
type ConfigStore struct {
	redis *redis.Client
}

// NewConfigStore creates a config store on the given Redis client
func NewConfigStore(rdb *redis.Client) *ConfigStore {
	return &ConfigStore{redis: rdb}
}

// Create stores a new redirect config. Returns *DuplicateSourceError if the
// source hostname is already registered.
func (s *ConfigStore) Create(ctx context.Context, source, target string) (*model.RedirectConfig, error) {
	// Pre-check purely for a friendlier error; the HSETNX below is the
	// authoritative guard.
	existing, err := s.redis.HGet(ctx, sourceIndexKey, source).Result()
	if err == nil {
		return nil, &DuplicateSourceError{Source: source, ExistingUUID: existing}
	} else if err != redis.Nil {
		return nil, err
	}

	cfg := model.RedirectConfig{
		UUID:      uuid.New().String(),
		Source:    source,
		Target:    target,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	// Write the document before claiming the source. A document without an
	// index entry is unreachable and harmless; an index entry without a
	// document would wedge the source forever, since there is no delete path.
	if err := s.redis.Set(ctx, configKeyPrefix+cfg.UUID, data, 0).Err(); err != nil {
		return nil, err
	}

	claimed, err := s.redis.HSetNX(ctx, sourceIndexKey, source, cfg.UUID).Result()
	if err != nil {
		s.redis.Del(ctx, configKeyPrefix+cfg.UUID)
		return nil, err
	}
	if !claimed {
		// Lost a race with a concurrent create for the same source
		s.redis.Del(ctx, configKeyPrefix+cfg.UUID)
		winner, err := s.redis.HGet(ctx, sourceIndexKey, source).Result()
		if err != nil {
			return nil, err
		}
		log.Warn().Str("source", source).Str("existing_uuid", winner).Msg("Concurrent create lost source claim")
		return nil, &DuplicateSourceError{Source: source, ExistingUUID: winner}
	}

	return &cfg, nil
}

// GetBySource looks up a config by its exact source hostname
func (s *ConfigStore) GetBySource(ctx context.Context, hostname string) (*model.RedirectConfig, error) {
	id, err := s.redis.HGet(ctx, sourceIndexKey, hostname).Result()
	if err == redis.Nil {
		return nil, ErrConfigNotFound
	} else if err != nil {
		return nil, err
	}
	return s.GetByUUID(ctx, id)
}

// GetByUUID looks up a config by its id
func (s *ConfigStore) GetByUUID(ctx context.Context, id string) (*model.RedirectConfig, error) {
	data, err := s.redis.Get(ctx, configKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrConfigNotFound
	} else if err != nil {
		return nil, err
	}

	var cfg model.RedirectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// List returns every stored config
func (s *ConfigStore) List(ctx context.Context) ([]model.RedirectConfig, error) {
	ids, err := s.redis.HVals(ctx, sourceIndexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.RedirectConfig{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = configKeyPrefix + id
	}

	values, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	configs := make([]model.RedirectConfig, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			log.Error().Str("uuid", ids[i]).Msg("Config document missing for indexed uuid")
			continue
		}
		var cfg model.RedirectConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}
