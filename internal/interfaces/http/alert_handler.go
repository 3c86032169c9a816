package http

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rental-pro/internal/application/alerts"
	"github.com/tu-usuario/rental-pro/internal/application/dto"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// AlertHandler maneja las peticiones HTTP para alertas (protegido).
// El listado re-deriva siempre contra el estado actual del inventario: la
// colección de alertas es estado derivado, no un buzón que se llena aparte.
type AlertHandler struct {
	aggregator *alerts.Aggregator
}

// NewAlertHandler construye el handler.
func NewAlertHandler(aggregator *alerts.Aggregator) *AlertHandler {
	return &AlertHandler{aggregator: aggregator}
}

// List godoc
// @Summary      Listar alertas (re-deriva contra el estado actual)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        type           query  string  false  "maintenance | document | stock | fuel"
// @Param        severity       query  string  false  "low | medium | high | critical"
// @Param        show_resolved  query  bool    false  "incluir resueltas"
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var filter dto.AlertFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	all, err := h.aggregator.DeriveAlerts(time.Now())
	if err != nil {
		return respondError(c, err)
	}

	out := dto.AlertListResponse{Items: []dto.AlertResponse{}}
	for _, a := range all {
		if !a.Resolved {
			out.Unresolved++
			switch a.Severity {
			case entity.SeverityCritical:
				out.Critical++
			case entity.SeverityHigh:
				out.High++
			}
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.Severity != "" && string(a.Severity) != filter.Severity {
			continue
		}
		if a.Resolved && !filter.ShowResolved {
			continue
		}
		out.Items = append(out.Items, toAlertResponse(a))
	}
	out.Total = len(out.Items)

	// Las más urgentes primero; a igual severidad, las más recientes.
	sort.Slice(out.Items, func(i, j int) bool {
		ri := entity.Severity(out.Items[i].Severity).Rank()
		rj := entity.Severity(out.Items[j].Severity).Rank()
		if ri != rj {
			return ri > rj
		}
		return out.Items[i].CreatedAt.After(out.Items[j].CreatedAt)
	})
	return c.JSON(out)
}

// Raise godoc
// @Summary      Registrar alerta manual
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RaiseAlertRequest  true  "Datos de la alerta"
// @Success      201   {object}  dto.AlertResponse
// @Router       /api/alerts [post]
func (h *AlertHandler) Raise(c *fiber.Ctx) error {
	var in dto.RaiseAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	alertType := in.Type
	if alertType == "" {
		alertType = entity.AlertStock
	}
	ref := entity.EntityRef{Kind: entity.EntityKind(in.Entity.Kind), ID: in.Entity.ID}
	a, err := h.aggregator.Raise(alertType, in.Title, in.Description, entity.ParseSeverity(in.Severity), ref, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAlertResponse(a))
}

// Resolve godoc
// @Summary      Marcar alerta como resuelta (idempotente)
// @Tags         alerts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	if err := h.aggregator.Resolve(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toAlertResponse(a *entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:          a.ID,
		Type:        a.Type,
		Title:       a.Title,
		Description: a.Description,
		Severity:    string(a.Severity),
		Entity:      dto.EntityRefDTO{Kind: string(a.Entity.Kind), ID: a.Entity.ID},
		CreatedAt:   a.CreatedAt,
		Resolved:    a.Resolved,
	}
}
