package lock

import (
	"context"
	"testing"
	"time"

	"HaliSahaX/service/match/internal/match"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var _ match.Locker = (*RedisLock)(nil)

func newTestLock(t *testing.T, retries int) (*RedisLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLock(client, time.Minute, retries, time.Millisecond), mr
}

func TestAcquireIsExclusive(t *testing.T) {
	l, _ := newTestLock(t, 1)
	ctx := context.Background()

	token, ok, err := l.Acquire(ctx, "lock:match:sweep")
	if err != nil || !ok || token == "" {
		t.Fatalf("expected first acquire to succeed, ok=%v err=%v", ok, err)
	}

	_, ok, err = l.Acquire(ctx, "lock:match:sweep")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected second acquire to fail while lock is held")
	}
}

func TestReleaseRequiresOwnerToken(t *testing.T) {
	l, mr := newTestLock(t, 0)
	ctx := context.Background()

	token, ok, err := l.Acquire(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("acquire failed: ok=%v err=%v", ok, err)
	}

	if err := l.Release(ctx, "k", "someone-else"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mr.Exists("k") {
		t.Fatalf("lock released with a foreign token")
	}

	if err := l.Release(ctx, "k", token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists("k") {
		t.Fatalf("expected lock to be released")
	}

	if _, ok, _ := l.Acquire(ctx, "k"); !ok {
		t.Fatalf("expected acquire after release to succeed")
	}
}

func TestLockExpiresWithTTL(t *testing.T) {
	l, mr := newTestLock(t, 0)
	ctx := context.Background()

	if _, ok, _ := l.Acquire(ctx, "k"); !ok {
		t.Fatalf("acquire failed")
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, _ := l.Acquire(ctx, "k"); !ok {
		t.Fatalf("expected expired lock to be acquirable")
	}
}

func TestReleaseValidatesInput(t *testing.T) {
	l, _ := newTestLock(t, 0)
	if err := l.Release(context.Background(), "", ""); err == nil {
		t.Fatalf("expected error for empty key/token")
	}
}
