package idalloc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	l := NewLocalLocker()

	unlock, err := l.Lock(context.Background())
	require.NoError(t, err)

	t.Run("second caller waits until context ends", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := l.Lock(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	unlock()

	unlock, err = l.Lock(context.Background())
	require.NoError(t, err)
	unlock()
}

func newTestRedisLocker(t *testing.T) (*RedisLocker, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	l := NewRedisLocker(rdb, "")
	l.retry = time.Millisecond
	l.newToken = func() string { return "token-1" }
	return l, mock
}

func TestRedisLocker_Lock(t *testing.T) {
	t.Run("acquire and release", func(t *testing.T) {
		l, mock := newTestRedisLocker(t)
		mock.ExpectSetNX(DefaultLockKey, "token-1", 10*time.Second).SetVal(true)
		mock.ExpectEval(releaseScript, []string{DefaultLockKey}, "token-1").SetVal(int64(1))

		unlock, err := l.Lock(context.Background())
		require.NoError(t, err)
		unlock()

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries while held", func(t *testing.T) {
		l, mock := newTestRedisLocker(t)
		mock.ExpectSetNX(DefaultLockKey, "token-1", 10*time.Second).SetVal(false)
		mock.ExpectSetNX(DefaultLockKey, "token-1", 10*time.Second).SetVal(true)
		mock.ExpectEval(releaseScript, []string{DefaultLockKey}, "token-1").SetVal(int64(1))

		unlock, err := l.Lock(context.Background())
		require.NoError(t, err)
		unlock()

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up when context is cancelled", func(t *testing.T) {
		l, mock := newTestRedisLocker(t)
		l.retry = time.Hour
		mock.ExpectSetNX(DefaultLockKey, "token-1", 10*time.Second).SetVal(false)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := l.Lock(ctx)
		assert.ErrorIs(t, err, ErrLockNotAcquired)
	})

	t.Run("redis error", func(t *testing.T) {
		l, mock := newTestRedisLocker(t)
		mock.ExpectSetNX(DefaultLockKey, "token-1", 10*time.Second).SetErr(errors.New("connection refused"))

		_, err := l.Lock(context.Background())
		assert.Error(t, err)
	})
}
