package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("sesión expirada o no autorizada")
	ErrForbidden       = errors.New("acceso denegado")
	ErrNoSession       = errors.New("no hay sesión activa")
	ErrInvalidResponse = errors.New("respuesta inesperada del backend")

	// ErrRoleMismatch agrupa los rechazos por rol: la cuenta autenticó pero no es vendor.
	ErrRoleMismatch = errors.New("rol de cuenta no permitido")

	// Mensajes visibles para el usuario; se conservan tal como los muestra el portal.
	ErrAccessDenied       error = &RoleError{msg: "Access denied. Vendor account required."}
	ErrInvalidAccountType error = &RoleError{msg: "Invalid account type"}

	ErrWizardIncomplete = errors.New("faltan campos obligatorios")
)

// RoleError rechazo por rol con mensaje propio; errors.Is(err, ErrRoleMismatch) es true.
type RoleError struct {
	msg string
}

func (e *RoleError) Error() string { return e.msg }

// Is permite agrupar ErrAccessDenied y ErrInvalidAccountType bajo ErrRoleMismatch.
func (e *RoleError) Is(target error) bool { return target == ErrRoleMismatch }
