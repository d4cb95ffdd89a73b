package entity

import "time"

// Session prueba de autenticación del lado cliente: token + identidad cacheada.
// Se crea en login/register y se borra en logout o ante cualquier 401.
type Session struct {
	Token     string
	User      *User
	ExpiresAt time.Time // informativo; cero si el token no es un JWT legible
}

// Active indica si hay un token guardado.
func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}
