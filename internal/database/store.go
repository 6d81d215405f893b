package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nutritrack/backend/internal/models"
)

// DefaultUserDataKey is the fixed key the whole document lives under. The
// tracker is single-user, so there is exactly one document.
const DefaultUserDataKey = "nutritrack:userdata"

// UserDataStore persists the UserData document as a JSON blob in Redis.
type UserDataStore struct {
	redis *redis.Client
	key   string
}

// NewUserDataStore creates a store over the given Redis client.
func NewUserDataStore(client *redis.Client) *UserDataStore {
	return &UserDataStore{redis: client, key: DefaultUserDataKey}
}

// Load fetches and decodes the document. A missing key is the "not onboarded"
// state and returns (nil, nil). Meals are canonicalized so categories decoded
// from null are usable empty slices.
func (s *UserDataStore) Load(ctx context.Context) (*models.UserData, error) {
	raw, err := s.redis.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user data from Redis: %w", err)
	}

	var data models.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user data: %w", err)
	}
	if data.Log == nil {
		data.Log = models.DailyLog{}
	}
	for date, meal := range data.Log {
		data.Log[date] = meal.Canonical()
	}
	return &data, nil
}

// Save encodes and stores the document under the fixed key, without expiry.
func (s *UserDataStore) Save(ctx context.Context, data *models.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal user data: %w", err)
	}
	if err := s.redis.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user data to Redis: %w", err)
	}
	return nil
}
