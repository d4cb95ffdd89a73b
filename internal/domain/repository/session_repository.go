package repository

import "github.com/jhoicas/vendor-portal/internal/domain/entity"

// Claves de almacenamiento, compartidas por todos los backends de sesión.
const (
	KeyToken = "vendorToken"
	KeyUser  = "vendorUser"
)

// SessionRepository define el puerto de persistencia de la sesión del cliente (DIP).
// Sobrevive reinicios del proceso en los backends file y redis; no hace round trip al backend REST.
type SessionRepository interface {
	// Save persiste token y usuario en una sola operación.
	Save(token string, user entity.User) error
	// Clear borra token y usuario. Es idempotente.
	Clear() error
	// CurrentUser devuelve el usuario cacheado o nil si no hay (o no se puede decodificar).
	CurrentUser() (*entity.User, error)
	// HasToken indica si hay un bearer token guardado.
	HasToken() bool
	// Token devuelve el bearer token guardado o "".
	Token() string
}
