package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// MachineryHandler maneja las peticiones HTTP para maquinaria (protegido).
type MachineryHandler struct {
	uc *usecase.MachineryUseCase
}

// NewMachineryHandler construye el handler.
func NewMachineryHandler(uc *usecase.MachineryUseCase) *MachineryHandler {
	return &MachineryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar maquinaria
// @Tags         machinery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMachineryRequest  true  "Datos de la máquina"
// @Success      201   {object}  dto.MachineryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/machinery [post]
func (h *MachineryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMachineryRequest
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
// @Summary      Obtener máquina por ID
// @Tags         machinery
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la máquina"
// @Success      200  {object}  dto.MachineryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machinery/{id} [get]
func (h *MachineryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar flota de maquinaria (con estado de mantenimiento derivado)
// @Tags         machinery
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MachineryResponse
// @Router       /api/machinery [get]
func (h *MachineryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado operativo
// @Tags         machinery
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                   true  "ID de la máquina"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/machinery/{id}/status [patch]
func (h *MachineryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
