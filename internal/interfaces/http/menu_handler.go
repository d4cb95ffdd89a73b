package http

import "github.com/gofiber/fiber/v2"

// comingSoon página de menú todavía no implementada.
func comingSoon(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ComingSoonResponse{Title: title, Message: "Coming Soon"})
	}
}

// toDashboard redirección por defecto para "/" y rutas desconocidas.
func toDashboard(c *fiber.Ctx) error {
	return c.Redirect("/dashboard", fiber.StatusFound)
}
