// session хранит эфемерное состояние аутентификации в Redis:
//
//	{prefix}session:{jti}   -> subject  (TTL = жизнь access-токена)
//	{prefix}sliding:{jti}   -> subject  (TTL = окно неактивности)
//	{prefix}blacklist:{jti} -> "1"      (TTL = остаток жизни токена)
//	{prefix}rtk:{jti}       -> subject  (TTL = жизнь refresh-токена)
//
// Хранилище считается вспомогательным: его потеря разлогинивает
// пользователей, но не портит данные. Ошибки наружу отдаются как есть,
// решение fail-closed принимает сервисный слой.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Минимальный TTL записи чёрного списка.
const minBlacklistTTL = time.Second

// Store: контракт хранилища сессий.
type Store interface {
	// SaveSession фиксирует выданный access-токен.
	SaveSession(ctx context.Context, jti, subject string, ttl time.Duration) error
	// TouchSliding создаёт или продлевает sliding-запись.
	TouchSliding(ctx context.Context, jti, subject string, ttl time.Duration) error
	// Revoke заносит jti в чёрный список на ttl и удаляет session/sliding записи.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// IsBlacklisted сообщает, отозван ли jti.
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	// SaveRefresh запоминает refresh jti -> subject.
	SaveRefresh(ctx context.Context, jti, subject string, ttl time.Duration) error
	// ConsumeRefresh атомарно удаляет запись, если она есть и принадлежит
	// subject. Возвращает false, если записи нет или subject не совпал.
	ConsumeRefresh(ctx context.Context, jti, subject string) (bool, error)
	// DeleteRefresh удаляет refresh-запись (logout).
	DeleteRefresh(ctx context.Context, jti string) error
	// Ping проверяет доступность хранилища.
	Ping(ctx context.Context) error
	// Close закрывает клиент.
	Close() error
}

// consumeScript: compare-and-delete: два конкурентных refresh одним
// токеном не могут оба пройти ротацию.
var consumeScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisStore: реализация Store поверх go-redis.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore создаёт клиент Redis из URL (например, redis://:pass@host:6379/0)
// и проверяет соединение.
func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	const op = "session.NewRedisStore"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

func (s *RedisStore) sessionKey(jti string) string   { return s.prefix + "session:" + jti }
func (s *RedisStore) slidingKey(jti string) string   { return s.prefix + "sliding:" + jti }
func (s *RedisStore) blacklistKey(jti string) string { return s.prefix + "blacklist:" + jti }
func (s *RedisStore) refreshKey(jti string) string   { return s.prefix + "rtk:" + jti }

func (s *RedisStore) SaveSession(ctx context.Context, jti, subject string, ttl time.Duration) error {
	const op = "session.SaveSession"

	if err := s.rdb.Set(ctx, s.sessionKey(jti), subject, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *RedisStore) TouchSliding(ctx context.Context, jti, subject string, ttl time.Duration) error {
	const op = "session.TouchSliding"

	if err := s.rdb.Set(ctx, s.slidingKey(jti), subject, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *RedisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	const op = "session.Revoke"

	if ttl < minBlacklistTTL {
		ttl = minBlacklistTTL
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.blacklistKey(jti), "1", ttl)
	pipe.Del(ctx, s.sessionKey(jti), s.slidingKey(jti))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *RedisStore) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	const op = "session.IsBlacklisted"

	n, err := s.rdb.Exists(ctx, s.blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

func (s *RedisStore) SaveRefresh(ctx context.Context, jti, subject string, ttl time.Duration) error {
	const op = "session.SaveRefresh"

	if err := s.rdb.Set(ctx, s.refreshKey(jti), subject, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *RedisStore) ConsumeRefresh(ctx context.Context, jti, subject string) (bool, error) {
	const op = "session.ConsumeRefresh"

	n, err := consumeScript.Run(ctx, s.rdb, []string{s.refreshKey(jti)}, subject).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n == 1, nil
}

func (s *RedisStore) DeleteRefresh(ctx context.Context, jti string) error {
	const op = "session.DeleteRefresh"

	if err := s.rdb.Del(ctx, s.refreshKey(jti)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error { return s.rdb.Close() }

// Проверка на соответствие интерфейсу Store.
var _ Store = (*RedisStore)(nil)
