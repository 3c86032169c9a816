package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.MaintenanceRecordRepository = (*MaintenanceRecordRepo)(nil)

// MaintenanceRecordRepo implementación del puerto MaintenanceRecordRepository
// sobre PostgreSQL. Los repuestos consumidos se guardan como JSONB: son un
// snapshot histórico del servicio, no filas vivas que se consulten por su cuenta.
type MaintenanceRecordRepo struct {
	q Querier
}

// NewMaintenanceRecordRepository construye el adaptador de persistencia para mantenimientos.
func NewMaintenanceRecordRepository(q Querier) *MaintenanceRecordRepo {
	return &MaintenanceRecordRepo{q: q}
}

const maintenanceColumns = `id, entity_kind, entity_id, entity_name, type, date,
	description, technician_name, labor_cost, spare_parts, total_cost,
	next_maintenance_date, next_maintenance_hours, created_at`

// Create persiste un servicio de mantenimiento.
func (r *MaintenanceRecordRepo) Create(rec *entity.MaintenanceRecord) error {
	parts, err := json.Marshal(rec.SpareParts)
	if err != nil {
		return fmt.Errorf("marshal maintenance spare parts: %w", err)
	}
	query := `
		INSERT INTO maintenance_records (` + maintenanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		rec.ID, rec.Entity.Kind, rec.Entity.ID, rec.EntityName, rec.Type, rec.Date,
		rec.Description, rec.TechnicianName, rec.LaborCost, parts, rec.TotalCost,
		rec.NextMaintenanceDate, rec.NextMaintenanceHours, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance record: %w", err)
	}
	return nil
}

// List lista todos los servicios ordenados por fecha.
func (r *MaintenanceRecordRepo) List() ([]*entity.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	return collectMaintenanceRecords(rows)
}

// ListByEntity lista el historial de servicios de una máquina o vehículo.
func (r *MaintenanceRecordRepo) ListByEntity(ref entity.EntityRef) ([]*entity.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE entity_kind = $1 AND entity_id = $2 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, ref.Kind, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records by entity: %w", err)
	}
	return collectMaintenanceRecords(rows)
}

func collectMaintenanceRecords(rows pgx.Rows) ([]*entity.MaintenanceRecord, error) {
	defer rows.Close()
	var list []*entity.MaintenanceRecord
	for rows.Next() {
		var rec entity.MaintenanceRecord
		var parts []byte
		if err := rows.Scan(
			&rec.ID, &rec.Entity.Kind, &rec.Entity.ID, &rec.EntityName, &rec.Type, &rec.Date,
			&rec.Description, &rec.TechnicianName, &rec.LaborCost, &parts, &rec.TotalCost,
			&rec.NextMaintenanceDate, &rec.NextMaintenanceHours, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance record: %w", err)
		}
		if len(parts) > 0 {
			if err := json.Unmarshal(parts, &rec.SpareParts); err != nil {
				return nil, fmt.Errorf("unmarshal maintenance spare parts: %w", err)
			}
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
