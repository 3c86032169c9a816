package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// FuelHandler maneja las peticiones HTTP para cargas de combustible (protegido).
type FuelHandler struct {
	uc *usecase.FuelUseCase
}

// NewFuelHandler construye el handler.
func NewFuelHandler(uc *usecase.FuelUseCase) *FuelHandler {
	return &FuelHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar carga de combustible
// @Tags         fuel
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFuelRecordRequest  true  "Datos de la carga"
// @Success      201   {object}  dto.FuelRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fuel [post]
func (h *FuelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFuelRecordRequest
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
// @Summary      Listar cargas de combustible
// @Tags         fuel
// @Security     Bearer
// @Produce      json
// @Param        entity_kind  query  string  false  "machinery | vehicle (requiere entity_id)"
// @Param        entity_id    query  string  false  "ID de la entidad"
// @Success      200  {array}  dto.FuelRecordResponse
// @Router       /api/fuel [get]
func (h *FuelHandler) List(c *fiber.Ctx) error {
	kind := c.Query("entity_kind")
	id := c.Query("entity_id")
	if kind != "" && id != "" {
		out, err := h.uc.ListByEntity(kind, id)
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

// Stats godoc
// @Summary      Acumulados de combustible (litros, costo, registros)
// @Tags         fuel
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FuelStatsDTO
// @Router       /api/fuel/stats [get]
func (h *FuelHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
