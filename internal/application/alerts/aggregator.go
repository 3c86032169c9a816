// Package alerts convierte las clasificaciones del paquete derivation en la
// colección canónica de alertas que consumen el dashboard y la vista de
// alertas.
package alerts

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rental-pro/internal/domain/derivation"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
	"github.com/tu-usuario/rental-pro/pkg/logger"
)

// alertNamespace namespace fijo para derivar IDs deterministas (UUID v5).
// La misma condición sobre la misma entidad produce siempre el mismo ID,
// lo que hace la re-derivación idempotente sin estado auxiliar.
var alertNamespace = uuid.MustParse("7f1c2a9e-4b63-4f0d-9a51-c8a4de30b1a7")

// Config umbrales y mapeo de severidad para la derivación.
// La severidad de stock es configurable: la distinción exacta entre
// stock bajo y stock crítico sigue abierta con producto.
type Config struct {
	Thresholds         derivation.Thresholds
	LowStockSeverity   entity.Severity
	OutOfStockSeverity entity.Severity
}

// DefaultConfig severidades por defecto: sin_stock crítico, stock_bajo medio.
func DefaultConfig() Config {
	return Config{
		Thresholds:         derivation.DefaultThresholds(),
		LowStockSeverity:   entity.SeverityMedium,
		OutOfStockSeverity: entity.SeverityCritical,
	}
}

// Aggregator deriva alertas a partir de snapshots de los repositorios.
//
// Seguro de re-ejecutar tras cada mutación de entidades: las alertas de una
// condición que persiste conservan su identidad (y su flag Resolved); solo
// condiciones genuinamente nuevas crean alertas nuevas. Un registro corrupto
// no aborta la derivación del resto.
type Aggregator struct {
	machineryRepo repository.MachineryRepository
	vehicleRepo   repository.VehicleRepository
	sparePartRepo repository.SparePartRepository
	alertRepo     repository.AlertRepository
	cfg           Config
	log           *logger.Logger
}

// NewAggregator construye el agregador de alertas.
func NewAggregator(
	machineryRepo repository.MachineryRepository,
	vehicleRepo repository.VehicleRepository,
	sparePartRepo repository.SparePartRepository,
	alertRepo repository.AlertRepository,
	cfg Config,
	log *logger.Logger,
) *Aggregator {
	return &Aggregator{
		machineryRepo: machineryRepo,
		vehicleRepo:   vehicleRepo,
		sparePartRepo: sparePartRepo,
		alertRepo:     alertRepo,
		cfg:           cfg,
		log:           log,
	}
}

// DeriveAlerts recalcula las alertas de stock, documentos y mantenimiento
// contra el estado actual de los repositorios y devuelve la colección
// completa (incluidas las manuales y las resueltas). No garantiza orden:
// los consumidores ordenan y filtran por su cuenta.
func (ag *Aggregator) DeriveAlerts(now time.Time) ([]*entity.Alert, error) {
	ag.deriveStockAlerts(now)
	ag.deriveDocumentAlerts(now)
	ag.deriveMaintenanceAlerts(now)
	return ag.alertRepo.List()
}

// Resolve marca una alerta como resuelta. Idempotente y total: un ID
// inexistente o una alerta ya resuelta son no-ops.
func (ag *Aggregator) Resolve(alertID string) error {
	return ag.alertRepo.MarkResolved(alertID)
}

// Raise registra una alerta manual (evento levantado por un usuario, no
// derivado de una condición). Identidad aleatoria: dos eventos manuales
// iguales son alertas distintas.
func (ag *Aggregator) Raise(alertType, title, description string, severity entity.Severity, ref entity.EntityRef, now time.Time) (*entity.Alert, error) {
	a := &entity.Alert{
		ID:          uuid.New().String(),
		Type:        alertType,
		Title:       title,
		Description: description,
		Severity:    severity,
		Entity:      ref,
		CreatedAt:   now,
	}
	if err := ag.alertRepo.CreateIfAbsent(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (ag *Aggregator) deriveStockAlerts(now time.Time) {
	parts, err := ag.sparePartRepo.List()
	if err != nil {
		ag.log.Error().Err(err).Msg("derivar alertas de stock: listar repuestos")
		return
	}
	for _, part := range parts {
		status := derivation.ClassifyStock(part)
		var severity entity.Severity
		var title string
		switch status {
		case derivation.StockSinStock:
			severity = ag.cfg.OutOfStockSeverity
			title = "Sin Stock"
		case derivation.StockBajo:
			severity = ag.cfg.LowStockSeverity
			title = "Stock Bajo"
		case derivation.StockDesconocido:
			ag.log.Warn().Str("spare_part_id", part.ID).Msg("repuesto con stock inclasificable")
			continue
		default:
			continue
		}
		ag.upsert(&entity.Alert{
			ID:          deriveID(entity.AlertStock, entity.KindSparePart, part.ID, string(status)),
			Type:        entity.AlertStock,
			Title:       title,
			Description: fmt.Sprintf("%s (%s) con stock total %d, mínimo %d", part.Name, part.Code, part.TotalStock(), part.MinStock),
			Severity:    severity,
			Entity:      entity.EntityRef{Kind: entity.KindSparePart, ID: part.ID},
			CreatedAt:   now,
		})
	}
}

func (ag *Aggregator) deriveDocumentAlerts(now time.Time) {
	vehicles, err := ag.vehicleRepo.List()
	if err != nil {
		ag.log.Error().Err(err).Msg("derivar alertas de documentos: listar vehículos")
		return
	}
	window := ag.cfg.Thresholds.DocumentWindowDays
	for _, v := range vehicles {
		// Cada documento se evalúa por separado: un vehículo puede tener el
		// SOAT vencido y la revisión técnica vigente a la vez.
		ag.deriveOneDocument(v, "SOAT", entity.DocumentoSOAT, v.SoatExpiration, now, window)
		ag.deriveOneDocument(v, "Revisión Técnica", entity.DocumentoRevisionTecnica, v.TechnicalReviewExpiration, now, window)
	}
}

func (ag *Aggregator) deriveOneDocument(v *entity.Vehicle, label, docKind string, expiration time.Time, now time.Time, windowDays int) {
	status := derivation.ClassifyDocument(expiration, now, windowDays)
	var severity entity.Severity
	var title, desc string
	switch status {
	case derivation.DocumentExpired:
		severity = entity.SeverityHigh
		title = label + " Vencido"
		desc = fmt.Sprintf("%s del vehículo %s venció el %s", label, v.Plate, expiration.Format("2006-01-02"))
	case derivation.DocumentExpiring:
		severity = entity.SeverityMedium
		title = label + " por Vencer"
		desc = fmt.Sprintf("%s del vehículo %s vence el %s", label, v.Plate, expiration.Format("2006-01-02"))
	case derivation.DocumentUnknown:
		ag.log.Warn().Str("vehicle_id", v.ID).Str("document", docKind).Msg("vehículo sin fecha de vencimiento registrada")
		return
	default:
		return
	}
	// El discriminador incluye la fecha de vencimiento: renovar el documento
	// y volver a entrar en ventana produce una alerta con identidad nueva.
	ag.upsert(&entity.Alert{
		ID:          deriveID(entity.AlertDocument, entity.KindVehicle, v.ID, docKind+"|"+expiration.Format("2006-01-02")),
		Type:        entity.AlertDocument,
		Title:       title,
		Description: desc,
		Severity:    severity,
		Entity:      entity.EntityRef{Kind: entity.KindVehicle, ID: v.ID},
		CreatedAt:   now,
	})
}

func (ag *Aggregator) deriveMaintenanceAlerts(now time.Time) {
	machines, err := ag.machineryRepo.List()
	if err != nil {
		ag.log.Error().Err(err).Msg("derivar alertas de mantenimiento: listar maquinaria")
		return
	}
	window := ag.cfg.Thresholds.MaintenanceWindowDays
	for _, m := range machines {
		// Solo el vencimiento efectivo emite alerta; "upcoming" no.
		status := derivation.ClassifyMaintenance(m, now, window)
		if status != derivation.MaintenanceDue {
			if status == derivation.MaintenanceUnknown {
				ag.log.Debug().Str("machinery_id", m.ID).Msg("maquinaria sin próximo mantenimiento programado")
			}
			continue
		}
		next := *m.NextMaintenance
		// Discriminador por fecha programada: si tras un servicio la nueva
		// fecha vuelve a vencer, la ocurrencia es una alerta distinta.
		ag.upsert(&entity.Alert{
			ID:          deriveID(entity.AlertMaintenance, entity.KindMachinery, m.ID, next.Format("2006-01-02")),
			Type:        entity.AlertMaintenance,
			Title:       "Mantenimiento Vencido",
			Description: fmt.Sprintf("%s requiere mantenimiento desde el %s", m.Name, next.Format("2006-01-02")),
			Severity:    entity.SeverityHigh,
			Entity:      entity.EntityRef{Kind: entity.KindMachinery, ID: m.ID},
			CreatedAt:   now,
		})
	}
}

// upsert persiste sin pisar una alerta existente. Un fallo individual se
// registra y no detiene la derivación de las demás.
func (ag *Aggregator) upsert(a *entity.Alert) {
	if err := ag.alertRepo.CreateIfAbsent(a); err != nil {
		ag.log.Error().Err(err).Str("alert_id", a.ID).Msg("persistir alerta derivada")
	}
}

// deriveID identidad determinista: UUID v5 sobre (tipo, clase de entidad, ID,
// discriminador de la condición).
func deriveID(alertType string, kind entity.EntityKind, entityID, discriminator string) string {
	key := fmt.Sprintf("%s|%s|%s|%s", alertType, kind, entityID, discriminator)
	return uuid.NewSHA1(alertNamespace, []byte(key)).String()
}
