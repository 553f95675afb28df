package locker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL        = 10 * time.Second
	defaultWait       = 2 * time.Second
	defaultRetryDelay = 25 * time.Millisecond
	releaseTimeout    = time.Second
)

// Снимает блокировку, только если она принадлежит нам
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisClient подмножество клиента go-redis
type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	redis.Scripter
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Unlock снимает захваченные блокировки
type Unlock func()

// RedisLocker блокировки ресурсов (тренер, зал, член клуба) в Redis
// Один писатель на ресурс между всеми экземплярами сервиса
type RedisLocker struct {
	client     RedisClient
	prefix     string
	ttl        time.Duration
	wait       time.Duration
	retryDelay time.Duration
	newToken   func() string
	logger     Logger
}

// NewRedisLocker создает блокировщик; нулевые ttl и wait заменяются значениями по умолчанию
func NewRedisLocker(client RedisClient, prefix string, ttl, wait time.Duration, logger Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if wait <= 0 {
		wait = defaultWait
	}
	if prefix == "" {
		prefix = "lock"
	}
	return &RedisLocker{
		client:     client,
		prefix:     prefix,
		ttl:        ttl,
		wait:       wait,
		retryDelay: defaultRetryDelay,
		newToken:   uuid.NewString,
		logger:     logger,
	}
}

// Lock захватывает блокировки всех ключей в отсортированном порядке
// При неудаче уже захваченные блокировки снимаются
func (l *RedisLocker) Lock(ctx context.Context, keys ...string) (Unlock, error) {
	keys = normalize(keys)
	token := l.newToken()
	deadline := time.Now().Add(l.wait)

	acquired := make([]string, 0, len(keys))
	for _, key := range keys {
		redisKey := l.prefix + ":" + key
		if err := l.acquire(ctx, redisKey, token, deadline); err != nil {
			l.release(acquired, token)
			return nil, err
		}
		acquired = append(acquired, redisKey)
	}

	return func() { l.release(acquired, token) }, nil
}

func (l *RedisLocker) acquire(ctx context.Context, key, token string, deadline time.Time) error {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("%w: SETNX %s: %v", ErrRedis, key, err)
		}
		if ok {
			return nil
		}

		if !time.Now().Add(l.retryDelay).Before(deadline) {
			l.logger.Warn("Lock: %s is still held after %s", key, l.wait)
			return fmt.Errorf("%w: %s", ErrLockNotAcquired, key)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *RedisLocker) release(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	for i := len(keys) - 1; i >= 0; i-- {
		if err := releaseScript.Run(ctx, l.client, []string{keys[i]}, token).Err(); err != nil {
			// Блокировка истечет сама по ttl
			l.logger.Error("Unlock: failed to release %s: %v", keys[i], err)
		}
	}
}

// normalize сортирует ключи и убирает дубликаты, чтобы запросы захватывали их в одном порядке
func normalize(keys []string) []string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	result := sorted[:0]
	for i, key := range sorted {
		if i > 0 && key == sorted[i-1] {
			continue
		}
		result = append(result, key)
	}
	return result
}

// NoopLocker блокировщик для конфигурации без Redis
// Изоляцию в этом случае обеспечивают сериализуемые транзакции и ограничения БД
type NoopLocker struct{}

// Lock ничего не делает
func (NoopLocker) Lock(context.Context, ...string) (Unlock, error) {
	return func() {}, nil
}
