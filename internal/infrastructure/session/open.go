package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendor-portal/internal/domain/repository"
	"github.com/jhoicas/vendor-portal/pkg/config"
)

// Open crea el almacén de sesión configurado. La función devuelta libera la conexión a Redis
// cuando aplica; siempre es seguro llamarla.
func Open(ctx context.Context, cfg *config.Config) (repository.SessionRepository, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return NewMemoryStore(), noop, nil
	case config.SessionBackendRedis:
		rdb, err := NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisStore(rdb, cfg.Redis.Prefix), rdb.Close, nil
	case config.SessionBackendFile:
		fs, err := NewFileStore(cfg.Session.Path, cfg.Session.Secret)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil
	}
	return nil, noop, fmt.Errorf("session: backend desconocido %q", cfg.Session.Backend)
}
