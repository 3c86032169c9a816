package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.ToolRepository = (*ToolRepo)(nil)

// ToolRepo implementación del puerto ToolRepository sobre PostgreSQL.
type ToolRepo struct {
	q Querier
}

// NewToolRepository construye el adaptador de persistencia para herramientas.
func NewToolRepository(q Querier) *ToolRepo {
	return &ToolRepo{q: q}
}

const toolColumns = `id, name, internal_code, status, observations, warehouse_id, created_at`

// Create persiste una herramienta nueva. El código interno tiene constraint único.
func (r *ToolRepo) Create(t *entity.Tool) error {
	query := `
		INSERT INTO tools (` + toolColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.InternalCode, t.Status, t.Observations, t.WarehouseID, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tool: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	return r.getBy(`id = $1`, id)
}

// GetByInternalCode obtiene una herramienta por código interno.
func (r *ToolRepo) GetByInternalCode(code string) (*entity.Tool, error) {
	return r.getBy(`internal_code = $1`, code)
}

func (r *ToolRepo) getBy(where, arg string) (*entity.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE ` + where
	var t entity.Tool
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Name, &t.InternalCode, &t.Status, &t.Observations, &t.WarehouseID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return &t, nil
}

// Update actualiza una herramienta existente.
func (r *ToolRepo) Update(t *entity.Tool) error {
	query := `
		UPDATE tools SET name = $2, internal_code = $3, status = $4, observations = $5, warehouse_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.InternalCode, t.Status, t.Observations, t.WarehouseID)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	return nil
}

// List lista todas las herramientas.
func (r *ToolRepo) List() ([]*entity.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tool
	for rows.Next() {
		var t entity.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.InternalCode, &t.Status, &t.Observations, &t.WarehouseID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
