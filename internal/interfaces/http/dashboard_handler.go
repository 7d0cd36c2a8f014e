package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/dashboard-pro/internal/application/analytics"
)

// DashboardHandler expone las vistas derivadas del panel.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      KPIs del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// WeeklySales godoc
// @Summary      Ventas semanales (7 cubetas Mon..Sun)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WeeklySalesBucketDTO
// @Router       /api/dashboard/weekly-sales [get]
func (h *DashboardHandler) WeeklySales(c *fiber.Ctx) error {
	out, err := h.uc.WeeklySales()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// CategoryShares godoc
// @Summary      Participación de ventas por categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryShareDTO
// @Router       /api/dashboard/popular-categories [get]
func (h *DashboardHandler) CategoryShares(c *fiber.Ctx) error {
	out, err := h.uc.CategoryShares()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Actividad reciente (últimas 4 órdenes)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActivityDTO
// @Router       /api/dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	out, err := h.uc.RecentActivity()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
