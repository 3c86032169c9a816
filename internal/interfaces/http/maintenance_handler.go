package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/application/usecase"
)

// MaintenanceHandler maneja las peticiones HTTP para servicios de mantenimiento (protegido).
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar servicio de mantenimiento
// @Description  Descuenta los repuestos consumidos del almacén de la máquina,
// @Description  actualiza sus fechas de mantenimiento y emite el egreso en finanzas.
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.MaintenanceRecordResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar servicios (opcionalmente por entidad)
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        entity_kind  query  string  false  "machinery | vehicle (requiere entity_id)"
// @Param        entity_id    query  string  false  "ID de la entidad"
// @Success      200  {array}  dto.MaintenanceRecordResponse
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
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
