package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.RentalRepository = (*RentalRepo)(nil)

// RentalRepo implementación del puerto RentalRepository sobre PostgreSQL.
type RentalRepo struct {
	q Querier
}

// NewRentalRepository construye el adaptador de persistencia para alquileres.
func NewRentalRepository(q Querier) *RentalRepo {
	return &RentalRepo{q: q}
}

const rentalColumns = `id, client_name, client_contact, machinery_id, machinery_name,
	start_date, end_date, daily_rate, total_amount, status, description, created_at`

// Create persiste un alquiler nuevo.
func (r *RentalRepo) Create(rec *entity.Rental) error {
	query := `
		INSERT INTO rentals (` + rentalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ClientName, rec.ClientContact, rec.MachineryID, rec.MachineryName,
		rec.StartDate, rec.EndDate, rec.DailyRate, rec.TotalAmount, rec.Status,
		rec.Description, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rental: %w", err)
	}
	return nil
}

// GetByID obtiene un alquiler por ID.
func (r *RentalRepo) GetByID(id string) (*entity.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	var rec entity.Rental
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ClientName, &rec.ClientContact, &rec.MachineryID, &rec.MachineryName,
		&rec.StartDate, &rec.EndDate, &rec.DailyRate, &rec.TotalAmount, &rec.Status,
		&rec.Description, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rental: %w", err)
	}
	return &rec, nil
}

// Update actualiza un alquiler existente.
func (r *RentalRepo) Update(rec *entity.Rental) error {
	query := `
		UPDATE rentals SET client_name = $2, client_contact = $3, start_date = $4,
			end_date = $5, daily_rate = $6, total_amount = $7, status = $8, description = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ClientName, rec.ClientContact, rec.StartDate, rec.EndDate,
		rec.DailyRate, rec.TotalAmount, rec.Status, rec.Description,
	)
	if err != nil {
		return fmt.Errorf("update rental: %w", err)
	}
	return nil
}

// List lista todos los alquileres ordenados por fecha de inicio.
func (r *RentalRepo) List() ([]*entity.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY start_date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	return collectRentals(rows)
}

// ListByStatus lista los alquileres en un estado dado.
func (r *RentalRepo) ListByStatus(status string) ([]*entity.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 ORDER BY start_date`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list rentals by status: %w", err)
	}
	return collectRentals(rows)
}

func collectRentals(rows pgx.Rows) ([]*entity.Rental, error) {
	defer rows.Close()
	var list []*entity.Rental
	for rows.Next() {
		var rec entity.Rental
		if err := rows.Scan(
			&rec.ID, &rec.ClientName, &rec.ClientContact, &rec.MachineryID, &rec.MachineryName,
			&rec.StartDate, &rec.EndDate, &rec.DailyRate, &rec.TotalAmount, &rec.Status,
			&rec.Description, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
