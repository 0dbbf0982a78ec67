package locker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only when REDIS_URL points at a disposable Redis instance.
func TestRedis_LockUnlock(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	rdb, err := Open(url)
	require.NoError(t, err)
	defer rdb.Close()

	l := NewRedis(rdb, 2*time.Second, 100*time.Millisecond, nil)
	key := "test:" + EmployeeKey(uint(time.Now().UnixNano()%1_000_000))

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	_, err = l.Lock(context.Background(), key)
	assert.True(t, errors.Is(err, ErrNotAcquired))

	unlock()

	unlock2, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	unlock2()
}

// Runs only when REDIS_URL points at a disposable Redis instance.
func TestRedis_HeldLockOutlivesTTL(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	rdb, err := Open(url)
	require.NoError(t, err)
	defer rdb.Close()

	l := NewRedis(rdb, 300*time.Millisecond, 50*time.Millisecond, nil)
	key := "test:" + EmployeeKey(uint(time.Now().UnixNano()%1_000_000))

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	time.Sleep(time.Second)

	_, err = l.Lock(context.Background(), key)
	assert.True(t, errors.Is(err, ErrNotAcquired))

	unlock()

	unlock2, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	unlock2()
}

func TestOpen_InvalidURL(t *testing.T) {
	_, err := Open("not-a-redis-url")
	assert.Error(t, err)
}
