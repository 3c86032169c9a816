package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de persistencia para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `id, type, title, description, severity, entity_kind, entity_id, created_at, resolved`

// CreateIfAbsent inserta la alerta solo si el ID no existe todavía.
// ON CONFLICT DO NOTHING conserva la fila existente, incluido su flag resolved.
func (r *AlertRepo) CreateIfAbsent(a *entity.Alert) error {
	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Type, a.Title, a.Description, a.Severity, a.Entity.Kind, a.Entity.ID,
		a.CreatedAt, a.Resolved,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Type, &a.Title, &a.Description, &a.Severity, &a.Entity.Kind, &a.Entity.ID,
		&a.CreatedAt, &a.Resolved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// List lista todas las alertas, incluidas las resueltas.
func (r *AlertRepo) List() ([]*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(
			&a.ID, &a.Type, &a.Title, &a.Description, &a.Severity, &a.Entity.Kind, &a.Entity.ID,
			&a.CreatedAt, &a.Resolved,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkResolved marca la alerta como resuelta. Idempotente y total: ID
// inexistente o alerta ya resuelta son no-ops.
func (r *AlertRepo) MarkResolved(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE alerts SET resolved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert resolved: %w", err)
	}
	return nil
}

// CountUnresolved cuenta las alertas no resueltas con la severidad dada.
func (r *AlertRepo) CountUnresolved(severity entity.Severity) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM alerts WHERE resolved = FALSE AND severity = $1`, severity).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unresolved alerts: %w", err)
	}
	return n, nil
}
