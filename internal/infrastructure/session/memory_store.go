package session

import (
	"sync"

	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
)

var _ repository.SessionRepository = (*MemoryStore)(nil)

// MemoryStore sesión de vida del proceso (equivalente a una pestaña sin persistencia).
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  string
}

// NewMemoryStore construye un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string, user entity.User) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = token, raw
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", ""
	return nil
}

func (s *MemoryStore) CurrentUser() (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decodeUser(s.user), nil
}

func (s *MemoryStore) HasToken() bool {
	return s.Token() != ""
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
