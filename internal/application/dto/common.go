package dto

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total,omitempty"`
	Pages int `json:"pages,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Ref referencia a otro recurso. El backend la envía como id plano ("64f0...")
// o como documento poblado ({"_id": "64f0...", "name": "Shoes"}).
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON acepta string, null u objeto con _id/id y name.
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	res := gjson.ParseBytes(b)
	switch {
	case res.Type == gjson.Null:
		*r = Ref{}
	case res.Type == gjson.String:
		*r = Ref{ID: res.String()}
	case res.IsObject():
		*r = Ref{ID: idOf(b), Name: res.Get("name").String()}
	default:
		*r = Ref{ID: res.String()}
	}
	return nil
}

// MarshalJSON envía solo el id, que es lo que espera el backend en escrituras.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// idOf devuelve "id" o, si falta, "_id" de un documento JSON.
func idOf(b []byte) string {
	if id := gjson.GetBytes(b, "id"); id.Exists() && id.String() != "" {
		return id.String()
	}
	return gjson.GetBytes(b, "_id").String()
}

// Attachment archivo binario a enviar como parte multipart.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
