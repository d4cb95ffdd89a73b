package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/vendor-portal/internal/application/analytics"
)

// DashboardHandler dashboard del vendor.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Dashboard del vendor
// @Description  Sin marca aprobada devuelve solo el aviso correspondiente.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  portal.Dashboard
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	d, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to load dashboard")
	}
	return c.JSON(d)
}
