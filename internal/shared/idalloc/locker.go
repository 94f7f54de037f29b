package idalloc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker guards the read-ids / allocate / write sequence. The returned
// unlock func must be called exactly once.
type Locker interface {
	Lock(ctx context.Context) (unlock func(), err error)
}

// LocalLocker serializes allocation inside one process.
type LocalLocker struct {
	sem chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{sem: make(chan struct{}, 1)}
}

func (l *LocalLocker) Lock(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
		return func() { <-l.sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

const DefaultLockKey = "employees:id-allocation:lock"

var ErrLockNotAcquired = errors.New("id allocation lock not acquired")

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another process is left alone.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisLocker serializes allocation across processes sharing one store.
type RedisLocker struct {
	rdb      *redis.Client
	key      string
	ttl      time.Duration
	retry    time.Duration
	newToken func() string
}

func NewRedisLocker(rdb *redis.Client, key string) *RedisLocker {
	if key == "" {
		key = DefaultLockKey
	}
	return &RedisLocker{
		rdb:      rdb,
		key:      key,
		ttl:      10 * time.Second,
		retry:    50 * time.Millisecond,
		newToken: uuid.NewString,
	}
}

func (l *RedisLocker) Lock(ctx context.Context) (func(), error) {
	token := l.newToken()
	for {
		ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = l.rdb.Eval(releaseCtx, releaseScript, []string{l.key}, token).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrLockNotAcquired, ctx.Err())
		case <-time.After(l.retry):
		}
	}
}
