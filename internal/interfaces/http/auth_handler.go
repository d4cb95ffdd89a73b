package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

// AuthHandler páginas de login, registro y logout.
type AuthHandler struct {
	auth *portal.AuthContext
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(auth *portal.AuthContext) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Solo cuentas vendor. Tras autenticar carga la marca y navega al dashboard.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "email, password"
// @Success      200   {object}  SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse  "Access denied. Vendor account required."
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if _, err := h.auth.Login(c.UserContext(), in.Email, in.Password); err != nil {
		return respondError(c, err, "Login failed")
	}
	return c.JSON(toSessionResponse(h.auth.Snapshot(), "/"+ports.RouteDashboard))
}

// Register godoc
// @Summary      Crear cuenta vendor
// @Description  Una cuenta nueva va al registro de marca.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password son requeridos"})
	}
	if _, err := h.auth.Register(c.UserContext(), in); err != nil {
		return respondError(c, err, "Registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(h.auth.Snapshot(), "/"+ports.RouteRegisterBrand))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(); err != nil {
		return respondError(c, err, "Logout failed")
	}
	return c.JSON(toSessionResponse(h.auth.Snapshot(), "/"+ports.RouteLogin))
}

// Session godoc
// @Summary      Estado de la sesión
// @Description  Público. Devuelve el estado actual sin esperar a que termine la carga inicial.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(toSessionResponse(h.auth.Snapshot(), ""))
}
