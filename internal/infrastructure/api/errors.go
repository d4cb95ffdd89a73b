package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/jhoicas/vendor-portal/internal/domain"
)

// Error respuesta no-2xx del backend. Conserva status, código y mensaje del cuerpo.
type Error struct {
	Status    int
	Code      string
	Message   string
	Body      []byte
	RequestID string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// Unwrap mapea el status a los errores de dominio para usar errors.Is.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	}
	return nil
}

// newError arma el error a partir del cuerpo. El mensaje sale de "message",
// "error" (string) o "error.message"; si no hay, del texto del status.
func newError(status int, body []byte, requestID string) *Error {
	e := &Error{Status: status, Body: body, RequestID: requestID}
	if gjson.ValidBytes(body) {
		root := gjson.ParseBytes(body)
		switch {
		case root.Get("message").Type == gjson.String:
			e.Message = root.Get("message").String()
		case root.Get("error").Type == gjson.String:
			e.Message = root.Get("error").String()
		case root.Get("error.message").Exists():
			e.Message = root.Get("error.message").String()
		}
		e.Code = root.Get("code").String()
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// Message devuelve el texto a mostrar en línea junto al formulario: el mensaje
// del backend si es un *Error, o err.Error() en otro caso.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
