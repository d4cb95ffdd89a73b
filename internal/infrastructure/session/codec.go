// Package session implementa SessionRepository sobre archivo, memoria y Redis.
// Todos los backends guardan las mismas dos claves: vendorToken y vendorUser.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

// userRecord forma serializada de vendorUser. Acepta "_id" de registros guardados
// directamente desde respuestas del backend.
type userRecord struct {
	ID      string `json:"id,omitempty"`
	MongoID string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

func encodeUser(u entity.User) (string, error) {
	b, err := json.Marshal(userRecord{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
	if err != nil {
		return "", fmt.Errorf("session: serializar usuario: %w", err)
	}
	return string(b), nil
}

// decodeUser devuelve nil si raw está vacío o no es un registro válido.
func decodeUser(raw string) *entity.User {
	if raw == "" {
		return nil
	}
	var rec userRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil
	}
	id := rec.ID
	if id == "" {
		id = rec.MongoID
	}
	return &entity.User{ID: id, Name: rec.Name, Email: rec.Email, Role: rec.Role}
}
