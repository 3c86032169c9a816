package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.FuelRecordRepository = (*FuelRecordRepo)(nil)

// FuelRecordRepo implementación del puerto FuelRecordRepository sobre PostgreSQL.
type FuelRecordRepo struct {
	q Querier
}

// NewFuelRecordRepository construye el adaptador de persistencia para combustible.
func NewFuelRecordRepository(q Querier) *FuelRecordRepo {
	return &FuelRecordRepo{q: q}
}

const fuelColumns = `id, entity_kind, entity_id, entity_name, date, liters,
	unit_cost, total_cost, location, odometer, hourmeter, created_at`

// Create persiste una carga de combustible.
func (r *FuelRecordRepo) Create(rec *entity.FuelRecord) error {
	query := `
		INSERT INTO fuel_records (` + fuelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Entity.Kind, rec.Entity.ID, rec.EntityName, rec.Date, rec.Liters,
		rec.UnitCost, rec.TotalCost, rec.Location, rec.Odometer, rec.Hourmeter, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fuel record: %w", err)
	}
	return nil
}

// List lista todas las cargas ordenadas por fecha.
func (r *FuelRecordRepo) List() ([]*entity.FuelRecord, error) {
	query := `SELECT ` + fuelColumns + ` FROM fuel_records ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fuel records: %w", err)
	}
	return collectFuelRecords(rows)
}

// ListByEntity lista las cargas de una máquina o vehículo concreto.
func (r *FuelRecordRepo) ListByEntity(ref entity.EntityRef) ([]*entity.FuelRecord, error) {
	query := `SELECT ` + fuelColumns + ` FROM fuel_records WHERE entity_kind = $1 AND entity_id = $2 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, ref.Kind, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("list fuel records by entity: %w", err)
	}
	return collectFuelRecords(rows)
}

func collectFuelRecords(rows pgx.Rows) ([]*entity.FuelRecord, error) {
	defer rows.Close()
	var list []*entity.FuelRecord
	for rows.Next() {
		var rec entity.FuelRecord
		if err := rows.Scan(
			&rec.ID, &rec.Entity.Kind, &rec.Entity.ID, &rec.EntityName, &rec.Date, &rec.Liters,
			&rec.UnitCost, &rec.TotalCost, &rec.Location, &rec.Odometer, &rec.Hourmeter, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fuel record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
