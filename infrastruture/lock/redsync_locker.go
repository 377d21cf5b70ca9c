package lock

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/hashi-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultExpiry = 30 * time.Second

// RedsyncLocker provides named distributed locks backed by Redis.
type RedsyncLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
}

// NewRedsyncLocker initializes a RedsyncLocker with the provided Redis client.
func NewRedsyncLocker(client *redis.Client) (i.Locker, error) {
	if client == nil {
		return nil, errors.New("locker requires a redis client")
	}
	pool := goredis.NewPool(client)
	return &RedsyncLocker{
		locker: redsync.New(pool),
		expiry: defaultExpiry,
	}, nil
}

// Acquire takes the named lock and returns a release function.
func (rl *RedsyncLocker) Acquire(ctx context.Context, name string) (func() error, error) {
	mutex := rl.locker.NewMutex(name, redsync.WithExpiry(rl.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	release := func() error {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("lock was not held at release")
		}
		return nil
	}
	return release, nil
}
