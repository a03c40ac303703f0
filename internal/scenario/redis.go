package scenario

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/futurefunds/retirement-planner/internal/domain"
)

// RedisStore keeps each scenario as a JSON string under <prefix>:scenario:<id> and
// indexes a user's scenarios in the sorted set <prefix>:user:<userId>:scenarios,
// scored by UpdatedAt in milliseconds.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore wraps an existing client. An empty prefix defaults to "futurefunds".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "futurefunds"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Verify interface compliance
var _ Store = (*RedisStore)(nil)

func (r *RedisStore) scenarioKey(id string) string {
	return r.prefix + ":scenario:" + id
}

func (r *RedisStore) userKey(userID string) string {
	return r.prefix + ":user:" + userID + ":scenarios"
}

// Ping checks connectivity to the Redis server
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Create(ctx context.Context, s domain.Scenario) (domain.Scenario, error) {
	s, err := prepare(s)
	if err != nil {
		return domain.Scenario{}, err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to encode scenario: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.scenarioKey(s.ID), data, 0)
		p.ZAdd(ctx, r.userKey(s.UserID), redis.Z{Score: float64(s.UpdatedAt.UnixMilli()), Member: s.ID})
		return nil
	})
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to store scenario: %w", err)
	}
	return s, nil
}

func (r *RedisStore) List(ctx context.Context, userID string) ([]domain.Scenario, error) {
	ids, err := r.client.ZRevRange(ctx, r.userKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	out := make([]domain.Scenario, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.scenarioKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a document; skip it
			continue
		}
		var s domain.Scenario
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("failed to decode scenario %s: %w", ids[i], err)
		}
		out = append(out, s)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *RedisStore) Delete(ctx context.Context, id, userID string) error {
	if err := checkDelete(id, userID); err != nil {
		return err
	}
	if _, err := r.client.ZScore(ctx, r.userKey(userID), id).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to look up scenario: %w", err)
	}
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, r.scenarioKey(id))
		p.ZRem(ctx, r.userKey(userID), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	return nil
}
