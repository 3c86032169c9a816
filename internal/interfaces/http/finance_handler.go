package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// FinanceHandler maneja las peticiones HTTP para movimientos financieros (protegido).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento financiero
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinancialRecordRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.FinancialRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/records [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (opcionalmente por mes calendario)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "Año (requiere month)"
// @Param        month  query  int  false  "Mes 1-12"
// @Success      200  {array}  dto.FinancialRecordResponse
// @Router       /api/finance/records [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year > 0 && month > 0 {
		out, err := h.uc.ListByMonth(year, time.Month(month), time.UTC)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Totales de ingresos, egresos y utilidad del mes indicado
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes 1-12"
// @Success      200  {object}  dto.FinanceSummaryDTO
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year <= 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year y month (1-12) son requeridos"})
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	out, err := h.uc.Summary(from, from.AddDate(0, 1, 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExpenseCategories godoc
// @Summary      Catálogo de categorías de gasto
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExpenseCategoryDTO
// @Router       /api/finance/expense-categories [get]
func (h *FinanceHandler) ExpenseCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ExpenseCategories())
}
