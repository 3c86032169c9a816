package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// RentalHandler maneja las peticiones HTTP para alquileres (protegido).
type RentalHandler struct {
	uc *usecase.RentalUseCase
}

// NewRentalHandler construye el handler.
func NewRentalHandler(uc *usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar alquiler (marca la máquina como alquilada y emite el ingreso)
// @Tags         rentals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRentalRequest  true  "Datos del alquiler"
// @Success      201   {object}  dto.RentalResponse
// @Failure      409   {object}  dto.ErrorResponse  "máquina no disponible"
// @Router       /api/rentals [post]
func (h *RentalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRentalRequest
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
// @Summary      Obtener alquiler por ID
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del alquiler"
// @Success      200  {object}  dto.RentalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rentals/{id} [get]
func (h *RentalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alquiler no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar alquileres (opcionalmente por estado)
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "activo | completado | cancelado"
// @Success      200  {array}  dto.RentalResponse
// @Router       /api/rentals [get]
func (h *RentalHandler) List(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		out, err := h.uc.ListByStatus(status)
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

// Complete godoc
// @Summary      Completar un alquiler activo (libera la máquina)
// @Tags         rentals
// @Security     Bearer
// @Param        id  path  string  true  "ID del alquiler"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "alquiler no activo"
// @Router       /api/rentals/{id}/complete [post]
func (h *RentalHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar un alquiler activo (libera la máquina)
// @Tags         rentals
// @Security     Bearer
// @Param        id  path  string  true  "ID del alquiler"
// @Success      204
// @Router       /api/rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
