package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/monkeytypegame/monkeytype-redirects/model"
)

const userIndexKey = "user_index" // Redis hash: username -> JSON User

// UserStore persists dashboard users. Username uniqueness is enforced by
// claiming the index field with HSETNX.
type UserStore struct {
	redis *redis.Client
}

// NewUserStore creates a user store on the given Redis client
func NewUserStore(rdb *redis.Client) *UserStore {
	return &UserStore{redis: rdb}
}

// Create stores a new user. Returns ErrUserExists if the username is taken.
func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	user := model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	claimed, err := s.redis.HSetNX(ctx, userIndexKey, username, data).Result()
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrUserExists
	}

	return &user, nil
}

// GetByUsername looks up a user by login name
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	data, err := s.redis.HGet(ctx, userIndexKey, username).Bytes()
	if err == redis.Nil {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
