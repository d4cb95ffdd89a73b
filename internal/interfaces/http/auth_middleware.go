package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

// LocalState clave de Fiber Locals con el portal.State de la petición.
const LocalState = "portal_state"

// sessionState lo que necesita la guarda; lo implementa *portal.AuthContext.
type sessionState interface {
	Snapshot() portal.State
	Ready() <-chan struct{}
}

// RequireSession guarda de rutas protegidas. Mientras la sesión persistida se
// resuelve espera hasta wait; si sigue cargando responde 503 con Retry-After.
// Sin vendor autenticado redirige a /login (o 401 si el cliente pide JSON).
func RequireSession(auth sessionState, wait time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := auth.Snapshot()
		if portal.Evaluate(state) == portal.DecisionWait {
			timer := time.NewTimer(wait)
			select {
			case <-auth.Ready():
			case <-timer.C:
			case <-c.Context().Done():
			}
			timer.Stop()
			state = auth.Snapshot()
		}

		switch portal.Evaluate(state) {
		case portal.DecisionWait:
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_LOADING",
				Message: "la sesión todavía se está cargando",
			})
		case portal.DecisionRedirect:
			return toLogin(c)
		}
		c.Locals(LocalState, state)
		return c.Next()
	}
}

// toLogin 302 a /login, o 401 JSON cuando el cliente pide JSON.
func toLogin(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "inicie sesión con una cuenta vendor",
		})
	}
	return c.Redirect("/login", fiber.StatusFound)
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// GetState devuelve el estado resuelto por RequireSession.
func GetState(c *fiber.Ctx) portal.State {
	s, _ := c.Locals(LocalState).(portal.State)
	return s
}

// GetUser devuelve el vendor autenticado (después de RequireSession).
func GetUser(c *fiber.Ctx) *entity.User {
	return GetState(c).User
}
