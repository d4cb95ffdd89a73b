package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
)

var _ repository.SessionRepository = (*FileStore)(nil)

// FileStore guarda la sesión en un documento JSON {vendorToken, vendorUser} en disco.
// Es el equivalente al localStorage del navegador: sobrevive reinicios del proceso.
// Si se configura un secreto el documento se sella con secretbox.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	sealer *sealer
}

// NewFileStore construye el almacén. secret vacío = archivo en claro (modo 0600).
func NewFileStore(path, secret string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session: ruta de archivo vacía")
	}
	s := &FileStore{path: path}
	if secret != "" {
		s.sealer = newSealer(secret)
	}
	return s, nil
}

// Path ruta del documento de sesión.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(token string, user entity.User) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(map[string]string{
		repository.KeyToken: token,
		repository.KeyUser:  raw,
	})
}

// Clear elimina el documento. Si no existe no es error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: borrar %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) CurrentUser() (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return decodeUser(doc[repository.KeyUser]), nil
}

func (s *FileStore) HasToken() bool {
	return s.Token() != ""
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.read()
	if err != nil {
		return ""
	}
	return doc[repository.KeyToken]
}

// read devuelve un documento vacío si el archivo no existe o está corrupto;
// solo falla si el archivo está sellado y no hay secreto para abrirlo.
func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}, nil
	}
	if isSealed(data) {
		if s.sealer == nil {
			return nil, errSealedWithoutSecret
		}
		data, err = s.sealer.open(data)
		if err != nil {
			return nil, err
		}
	}
	doc := map[string]string{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return map[string]string{}, nil
	}
	return doc, nil
}

// write escribe de forma atómica: archivo temporal en el mismo directorio + rename.
func (s *FileStore) write(doc map[string]string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("session: serializar documento: %w", err)
	}
	if s.sealer != nil {
		if data, err = s.sealer.seal(data); err != nil {
			return err
		}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("session: archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op tras el rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("session: permisos: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("session: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: cerrar: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}
