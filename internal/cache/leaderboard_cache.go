package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/studyforge/scoring-service/internal/leaderboard"
)

const leaderboardKey = "scoring:leaderboard:top"

// LeaderboardCache mirrors the in-process leaderboard into a shared store so
// sibling instances can render a recent snapshot. Writes are best-effort;
// the in-memory board stays authoritative.
type LeaderboardCache interface {
	SetTop(ctx context.Context, entries []leaderboard.Entry, ttl time.Duration) error
	GetTop(ctx context.Context) ([]leaderboard.Entry, error)
}

type redisLeaderboardCache struct {
	client *redis.Client
}

func NewRedisLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &redisLeaderboardCache{client: client}
}

func (c *redisLeaderboardCache) SetTop(ctx context.Context, entries []leaderboard.Entry, ttl time.Duration) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey, payload, ttl).Err()
}

func (c *redisLeaderboardCache) GetTop(ctx context.Context) ([]leaderboard.Entry, error) {
	payload, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []leaderboard.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// NoopLeaderboardCache is used when Redis is not configured.
type NoopLeaderboardCache struct{}

func (NoopLeaderboardCache) SetTop(context.Context, []leaderboard.Entry, time.Duration) error {
	return nil
}

func (NoopLeaderboardCache) GetTop(context.Context) ([]leaderboard.Entry, error) {
	return nil, nil
}
