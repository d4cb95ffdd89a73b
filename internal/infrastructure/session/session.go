package session

import (
	"time"

	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
	"github.com/jhoicas/vendor-portal/pkg/jwt"
)

// Snapshot arma la entidad Session desde cualquier repositorio.
// ExpiresAt se toma del claim exp cuando el token es un JWT legible.
func Snapshot(repo repository.SessionRepository) (*entity.Session, error) {
	user, err := repo.CurrentUser()
	if err != nil {
		return nil, err
	}
	s := &entity.Session{Token: repo.Token(), User: user}
	if info, err := jwt.Inspect(s.Token); err == nil {
		s.ExpiresAt = info.ExpiresAt
	}
	return s, nil
}

// Expired indica si la sesión declara un exp vencido. Un token opaco nunca se considera vencido.
func Expired(s *entity.Session, now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
