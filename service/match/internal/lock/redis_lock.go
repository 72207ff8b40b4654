package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLock implementa un lock distribuito basato su Redis.
// Soddisfa match.Locker per lo sweep periodico.
type RedisLock struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
}

func NewRedisLock(client *redis.Client, ttl time.Duration, retries int, backoff time.Duration) *RedisLock {
	// TTL breve evita lock orfani in caso di crash.
	return &RedisLock{
		client:  client,
		ttl:     ttl,
		retries: retries,
		backoff: backoff,
	}
}

// Acquire prova SET NX fino a retries volte; ok=false se il lock e' di un altro.
func (l *RedisLock) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := newToken()
	for attempt := 0; attempt <= l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return "", false, err
		}
		if ok {
			return token, true, nil
		}
		if attempt < l.retries {
			select {
			case <-ctx.Done():
				return "", false, ctx.Err()
			case <-time.After(l.backoff):
			}
		}
	}
	return "", false, nil
}

// Release cancella il lock solo se il token e' ancora quello acquisito.
func (l *RedisLock) Release(ctx context.Context, key, token string) error {
	if key == "" || token == "" {
		return errors.New("key e token sono richiesti")
	}
	return releaseLua.Run(ctx, l.client, []string{key}, token).Err()
}

var releaseLua = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func newToken() string {
	return uuid.NewString()
}
