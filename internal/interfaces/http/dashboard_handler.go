package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clientes-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint de estadísticas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats GET /api/dashboard/:userId
//
// Respuesta: DashboardStatsDTO (totales, desglose por estado y la serie de
// crecimiento de clientes de 12 meses). Se recalcula por completo en cada
// petición a partir de las colecciones actuales del usuario.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
