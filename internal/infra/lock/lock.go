package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var (
	// ErrLockNotAcquired возвращается, когда блокировка уже удерживается другим запросом
	ErrLockNotAcquired = errors.New("lock: not acquired")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("lock: redis error")
)

const keyPrefix = "scheduling:lock:host:"

// Снимаем блокировку только если она всё ещё наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker короткая блокировка на хоста через SET NX PX
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker создает блокировщик на основе Redis
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

// Key возвращает ключ блокировки хоста
func Key(hostID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, hostID)
}

// Acquire берет блокировку хоста и возвращает функцию для её снятия
func (l *RedisLocker) Acquire(ctx context.Context, hostID int64) (func(), error) {
	key := Key(hostID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: SetNX %s: %v", ErrRedis, key, err)
	}
	if !ok {
		return nil, ErrLockNotAcquired
	}

	release := func() {
		// Контекст запроса может быть уже отменён
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	}

	return release, nil
}

// NoopLocker используется, когда Redis-блокировка выключена
type NoopLocker struct{}

// Acquire всегда успешен
func (NoopLocker) Acquire(context.Context, int64) (func(), error) {
	return func() {}, nil
}
