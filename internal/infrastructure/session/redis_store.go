package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
)

var _ repository.SessionRepository = (*RedisStore)(nil)

const redisOpTimeout = 2 * time.Second

// RedisStore guarda la sesión en Redis bajo <prefix>:vendorToken y <prefix>:vendorUser.
// Pensado para el BFF en hosts sin directorio de usuario escribible.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewRedisStore construye el almacén sobre un cliente ya configurado.
func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "vendor-portal"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// NewRedisClient crea el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("session: conectar a redis %s: %w", addr, err)
	}
	return rdb, nil
}

func (s *RedisStore) key(k string) string { return s.prefix + ":" + k }

func (s *RedisStore) Save(token string, user entity.User) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.key(repository.KeyToken), token, 0)
		p.Set(ctx, s.key(repository.KeyUser), raw, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session: guardar en redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.rdb.Del(ctx, s.key(repository.KeyToken), s.key(repository.KeyUser)).Err(); err != nil {
		return fmt.Errorf("session: borrar en redis: %w", err)
	}
	return nil
}

func (s *RedisStore) CurrentUser() (*entity.User, error) {
	raw, err := s.get(repository.KeyUser)
	if err != nil {
		return nil, err
	}
	return decodeUser(raw), nil
}

func (s *RedisStore) HasToken() bool {
	return s.Token() != ""
}

func (s *RedisStore) Token() string {
	tok, err := s.get(repository.KeyToken)
	if err != nil {
		return ""
	}
	return tok
}

func (s *RedisStore) get(k string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	v, err := s.rdb.Get(ctx, s.key(k)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: leer %s en redis: %w", k, err)
	}
	return v, nil
}
