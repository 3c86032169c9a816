package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
// Los documentos digitalizados se guardan como JSONB en la misma fila.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador de persistencia para vehículos.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, plate, brand, model, year, mileage, status,
	soat_expiration, technical_review_expiration, warehouse_id, documents, created_at`

// Create persiste un vehículo nuevo. La placa tiene constraint único.
func (r *VehicleRepo) Create(v *entity.Vehicle) error {
	docs, err := json.Marshal(v.Documents)
	if err != nil {
		return fmt.Errorf("marshal vehicle documents: %w", err)
	}
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		v.ID, v.Plate, v.Brand, v.Model, v.Year, v.Mileage, v.Status,
		v.SoatExpiration, v.TechnicalReviewExpiration, v.WarehouseID, docs, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

// GetByPlate obtiene un vehículo por placa.
func (r *VehicleRepo) GetByPlate(plate string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate = $1`
	v, err := scanVehicle(r.q.QueryRow(context.Background(), query, plate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle by plate: %w", err)
	}
	return v, nil
}

// Update actualiza un vehículo existente.
func (r *VehicleRepo) Update(v *entity.Vehicle) error {
	docs, err := json.Marshal(v.Documents)
	if err != nil {
		return fmt.Errorf("marshal vehicle documents: %w", err)
	}
	query := `
		UPDATE vehicles SET plate = $2, brand = $3, model = $4, year = $5, mileage = $6,
			status = $7, soat_expiration = $8, technical_review_expiration = $9,
			warehouse_id = $10, documents = $11
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		v.ID, v.Plate, v.Brand, v.Model, v.Year, v.Mileage, v.Status,
		v.SoatExpiration, v.TechnicalReviewExpiration, v.WarehouseID, docs,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// List lista toda la flota de vehículos.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	var docs []byte
	err := row.Scan(
		&v.ID, &v.Plate, &v.Brand, &v.Model, &v.Year, &v.Mileage, &v.Status,
		&v.SoatExpiration, &v.TechnicalReviewExpiration, &v.WarehouseID, &docs, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		if err := json.Unmarshal(docs, &v.Documents); err != nil {
			return nil, fmt.Errorf("unmarshal vehicle documents: %w", err)
		}
	}
	return &v, nil
}
