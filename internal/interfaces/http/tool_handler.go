package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// ToolHandler maneja las peticiones HTTP para herramientas (protegido).
type ToolHandler struct {
	uc *usecase.ToolUseCase
}

// NewToolHandler construye el handler.
func NewToolHandler(uc *usecase.ToolUseCase) *ToolHandler {
	return &ToolHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateToolRequest  true  "Datos de la herramienta"
// @Success      201   {object}  dto.ToolResponse
// @Failure      409   {object}  dto.ErrorResponse  "código interno duplicado"
// @Router       /api/tools [post]
func (h *ToolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateToolRequest
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
// @Summary      Listar herramientas
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ToolResponse
// @Router       /api/tools [get]
func (h *ToolHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado (disponible / no_disponible)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                   true  "ID de la herramienta"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      204
// @Router       /api/tools/{id}/status [patch]
func (h *ToolHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
