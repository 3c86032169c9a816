package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/analytics"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
)

// DashboardHandler maneja las peticiones HTTP del panel (protegido).
type DashboardHandler struct {
	statsUC  *analytics.DashboardUseCase
	reportUC *analytics.MonthlyReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(statsUC *analytics.DashboardUseCase, reportUC *analytics.MonthlyReportUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC, reportUC: reportUC}
}

// Stats godoc
// @Summary      Contadores de cabecera del panel (todo derivado al momento)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.statsUC.GetStats(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyReport godoc
// @Summary      Reporte financiero de un mes calendario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes 1-12"
// @Success      200  {object}  dto.MonthlyReportDTO
// @Router       /api/dashboard/monthly-report [get]
func (h *DashboardHandler) MonthlyReport(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year <= 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year y month (1-12) son requeridos"})
	}
	out, err := h.reportUC.GetReport(year, time.Month(month), time.UTC)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
