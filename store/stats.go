package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/monkeytypegame/monkeytype-redirects/model"
)

const (
	statsKeyPrefix = "stats:" // stats:{uuid} -> Redis hash

	fieldTotal     = "total"
	fieldFirst     = "first"
	fieldLast      = "last"
	dayFieldPrefix = "day:" // day:YYYY-MM-DD -> count
)

// StatsStore persists per-config redirect counters in Redis. All mutation
// happens through RecordRedirect; the record for a uuid is created lazily by
// its first event and never deleted.
type StatsStore struct {
	redis *redis.Client
}

// NewStatsStore creates a stats store on the given Redis client
func NewStatsStore(rdb *redis.Client) *StatsStore {
	return &StatsStore{redis: rdb}
}

// RecordRedirect counts one redirect event for the config. The total, the
// calendar-day bucket, the last-redirected timestamp and (on the very first
// event) the first-redirected timestamp are all written inside a single
// MULTI/EXEC transaction: first-write detection is HSETNX, not a separate
// existence read, so concurrent events for a brand-new uuid cannot race.
func (s *StatsStore) RecordRedirect(ctx context.Context, uuid string) error {
	now := time.Now()
	key := statsKeyPrefix + uuid
	ts := now.Format(time.RFC3339Nano)

	pipe := s.redis.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldTotal, 1)
	pipe.HIncrBy(ctx, key, dayFieldPrefix+now.Format(model.DateFormat), 1)
	pipe.HSet(ctx, key, fieldLast, ts)
	pipe.HSetNX(ctx, key, fieldFirst, ts)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the stats record for a config, or ErrStatsNotFound if no
// redirect has ever been recorded for it.
func (s *StatsStore) Get(ctx context.Context, uuid string) (*model.RedirectStats, error) {
	fields, err := s.redis.HGetAll(ctx, statsKeyPrefix+uuid).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrStatsNotFound
	}
	return parseStats(uuid, fields)
}

func parseStats(uuid string, fields map[string]string) (*model.RedirectStats, error) {
	stats := &model.RedirectStats{
		UUID:           uuid,
		RedirectCounts: make(map[string]int),
	}

	for field, value := range fields {
		switch {
		case field == fieldTotal:
			total, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			stats.TotalRedirects = total
		case field == fieldFirst:
			t, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return nil, err
			}
			stats.FirstRedirected = t
		case field == fieldLast:
			t, err := time.Parse(time.RFC3339Nano, value)
			if err != nil {
				return nil, err
			}
			stats.LastRedirected = t
		case strings.HasPrefix(field, dayFieldPrefix):
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			stats.RedirectCounts[strings.TrimPrefix(field, dayFieldPrefix)] = count
		}
	}

	return stats, nil
}
