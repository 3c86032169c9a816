package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.MachineryRepository = (*MachineryRepo)(nil)

// MachineryRepo implementación del puerto MachineryRepository sobre PostgreSQL.
type MachineryRepo struct {
	q Querier
}

// NewMachineryRepository construye el adaptador de persistencia para maquinaria.
func NewMachineryRepository(q Querier) *MachineryRepo {
	return &MachineryRepo{q: q}
}

const machineryColumns = `id, name, category, brand, model, serial_number, year, hourmeter,
	condition, status, warehouse_id, last_maintenance, next_maintenance,
	maintenance_interval_hours, maintenance_interval_days, created_at`

// Create persiste una máquina nueva.
func (r *MachineryRepo) Create(m *entity.Machinery) error {
	query := `
		INSERT INTO machinery (` + machineryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Category, m.Brand, m.Model, m.SerialNumber, m.Year, m.Hourmeter,
		m.Condition, m.Status, m.WarehouseID, m.LastMaintenance, m.NextMaintenance,
		m.MaintenanceIntervalHours, m.MaintenanceIntervalDays, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machinery: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID.
func (r *MachineryRepo) GetByID(id string) (*entity.Machinery, error) {
	query := `SELECT ` + machineryColumns + ` FROM machinery WHERE id = $1`
	m, err := scanMachinery(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machinery: %w", err)
	}
	return m, nil
}

// Update actualiza una máquina existente.
func (r *MachineryRepo) Update(m *entity.Machinery) error {
	query := `
		UPDATE machinery SET name = $2, category = $3, brand = $4, model = $5, serial_number = $6,
			year = $7, hourmeter = $8, condition = $9, status = $10, warehouse_id = $11,
			last_maintenance = $12, next_maintenance = $13,
			maintenance_interval_hours = $14, maintenance_interval_days = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Category, m.Brand, m.Model, m.SerialNumber, m.Year, m.Hourmeter,
		m.Condition, m.Status, m.WarehouseID, m.LastMaintenance, m.NextMaintenance,
		m.MaintenanceIntervalHours, m.MaintenanceIntervalDays,
	)
	if err != nil {
		return fmt.Errorf("update machinery: %w", err)
	}
	return nil
}

// List lista toda la flota de maquinaria.
func (r *MachineryRepo) List() ([]*entity.Machinery, error) {
	query := `SELECT ` + machineryColumns + ` FROM machinery ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list machinery: %w", err)
	}
	defer rows.Close()
	var list []*entity.Machinery
	for rows.Next() {
		m, err := scanMachinery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan machinery: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// UpdateStatus cambia solo el estado operativo.
func (r *MachineryRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE machinery SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update machinery status: %w", err)
	}
	return nil
}

// UpdateMaintenanceDates fija último/próximo mantenimiento tras registrar un servicio.
// Un next nulo conserva la fecha programada que ya existía.
func (r *MachineryRepo) UpdateMaintenanceDates(id string, last time.Time, next *time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE machinery SET last_maintenance = $2, next_maintenance = COALESCE($3, next_maintenance) WHERE id = $1`,
		id, last, next)
	if err != nil {
		return fmt.Errorf("update machinery maintenance dates: %w", err)
	}
	return nil
}

func scanMachinery(row pgx.Row) (*entity.Machinery, error) {
	var m entity.Machinery
	err := row.Scan(
		&m.ID, &m.Name, &m.Category, &m.Brand, &m.Model, &m.SerialNumber, &m.Year, &m.Hourmeter,
		&m.Condition, &m.Status, &m.WarehouseID, &m.LastMaintenance, &m.NextMaintenance,
		&m.MaintenanceIntervalHours, &m.MaintenanceIntervalDays, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
