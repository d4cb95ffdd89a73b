package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/api"
)

// respondError traduce un error de caso de uso a la respuesta HTTP. Un 401 del
// backend ya borró la sesión: se envía a login en vez de mostrar el error.
// fallback es el mensaje cuando el error no trae uno propio.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *api.Error
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return toLogin(c)
	case errors.Is(err, domain.ErrRoleMismatch):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ROLE_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrWizardIncomplete):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WIZARD_INCOMPLETE", Message: err.Error()})
	case errors.As(err, &apiErr):
		return c.Status(backendStatus(apiErr.Status)).JSON(dto.ErrorResponse{Code: backendCode(apiErr), Message: apiErr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	msg := fallback
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}

// backendStatus conserva los 4xx del backend; los 5xx se presentan como 502.
func backendStatus(status int) int {
	if status >= 400 && status < 500 {
		return status
	}
	return fiber.StatusBadGateway
}

func backendCode(e *api.Error) string {
	if e.Code != "" {
		return e.Code
	}
	return "BACKEND_ERROR"
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
