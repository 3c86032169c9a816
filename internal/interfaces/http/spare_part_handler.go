package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// SparePartHandler maneja las peticiones HTTP para repuestos (protegido).
type SparePartHandler struct {
	uc *usecase.SparePartUseCase
}

// NewSparePartHandler construye el handler.
func NewSparePartHandler(uc *usecase.SparePartUseCase) *SparePartHandler {
	return &SparePartHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar repuesto con stock inicial por almacén
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSparePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.SparePartResponse
// @Failure      409   {object}  dto.ErrorResponse  "código duplicado"
// @Router       /api/spare-parts [post]
func (h *SparePartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.SparePartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [get]
func (h *SparePartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar repuestos (con clasificación de stock derivada)
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SparePartResponse
// @Router       /api/spare-parts [get]
func (h *SparePartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar stock de un repuesto en un almacén (delta con signo)
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del repuesto"
// @Param        body  body  dto.AdjustStockRequest  true  "Almacén y delta"
// @Success      200   {object}  dto.SparePartResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/spare-parts/{id}/stock [patch]
func (h *SparePartHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
