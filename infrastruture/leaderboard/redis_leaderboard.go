package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard keeps score-ordered boards in Redis sorted sets, with a
// TTL so expired boards clean themselves up.
type RedisLeaderboard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided Redis client and TTL.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) (i.SortedBoard, error) {
	if client == nil {
		return nil, errors.New("leaderboard requires a redis client")
	}
	return &RedisLeaderboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Record stores a member's score on the named board and sets expiration if necessary.
func (rl *RedisLeaderboard) Record(ctx context.Context, boardKey string, score float64, member string) error {
	_, err := rl.client.ZAdd(ctx, boardKey, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rl.client.TTL(ctx, boardKey).Result()
	if err == nil && ttl == -1 {
		_ = rl.client.Expire(ctx, boardKey, rl.ttl).Err()
	}

	return nil
}

// Rank returns the member's 1-based ascending rank on the named board.
func (rl *RedisLeaderboard) Rank(ctx context.Context, boardKey string, member string) (int64, error) {
	rank, err := rl.client.ZRank(ctx, boardKey, member).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("member %s not on board %s", member, boardKey)
		}
		return 0, err
	}
	return rank + 1, nil
}

// Top returns up to limit members with the lowest scores.
func (rl *RedisLeaderboard) Top(ctx context.Context, boardKey string, limit int64) ([]i.ScoredMember, error) {
	if limit <= 0 {
		return nil, nil
	}

	entries, err := rl.client.ZRangeWithScores(ctx, boardKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	members := make([]i.ScoredMember, 0, len(entries))
	for _, entry := range entries {
		members = append(members, i.ScoredMember{
			Member: fmt.Sprint(entry.Member),
			Score:  entry.Score,
		})
	}
	return members, nil
}
