package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rental-pro/internal/domain/entity"
	"github.com/tu-usuario/rental-pro/internal/domain/repository"
)

var _ repository.FinancialRecordRepository = (*FinancialRecordRepo)(nil)

// FinancialRecordRepo implementación del puerto FinancialRecordRepository sobre PostgreSQL.
// La referencia a entidad se guarda desarmada en (related_kind, related_id);
// ambas vacías significan movimiento sin entidad asociada.
type FinancialRecordRepo struct {
	q Querier
}

// NewFinancialRecordRepository construye el adaptador de persistencia para finanzas.
func NewFinancialRecordRepository(q Querier) *FinancialRecordRepo {
	return &FinancialRecordRepo{q: q}
}

const financialColumns = `id, type, category, subcategory, description, amount,
	date, related_kind, related_id, is_recurring, created_at`

// Create persiste un movimiento financiero.
func (r *FinancialRecordRepo) Create(rec *entity.FinancialRecord) error {
	query := `
		INSERT INTO financial_records (` + financialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Type, rec.Category, rec.Subcategory, rec.Description, rec.Amount,
		rec.Date, rec.Related.Kind, rec.Related.ID, rec.IsRecurring, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert financial record: %w", err)
	}
	return nil
}

// List lista todos los movimientos ordenados por fecha.
func (r *FinancialRecordRepo) List() ([]*entity.FinancialRecord, error) {
	query := `SELECT ` + financialColumns + ` FROM financial_records ORDER BY date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list financial records: %w", err)
	}
	return collectFinancialRecords(rows)
}

// ListByDateRange devuelve los movimientos con fecha en [from, to).
func (r *FinancialRecordRepo) ListByDateRange(from, to time.Time) ([]*entity.FinancialRecord, error) {
	query := `SELECT ` + financialColumns + ` FROM financial_records WHERE date >= $1 AND date < $2 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list financial records by range: %w", err)
	}
	return collectFinancialRecords(rows)
}

// ListByRelated lista los movimientos asociados a una entidad.
func (r *FinancialRecordRepo) ListByRelated(ref entity.EntityRef) ([]*entity.FinancialRecord, error) {
	query := `SELECT ` + financialColumns + ` FROM financial_records WHERE related_kind = $1 AND related_id = $2 ORDER BY date`
	rows, err := r.q.Query(context.Background(), query, ref.Kind, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("list financial records by related: %w", err)
	}
	return collectFinancialRecords(rows)
}

func collectFinancialRecords(rows pgx.Rows) ([]*entity.FinancialRecord, error) {
	defer rows.Close()
	var list []*entity.FinancialRecord
	for rows.Next() {
		var rec entity.FinancialRecord
		if err := rows.Scan(
			&rec.ID, &rec.Type, &rec.Category, &rec.Subcategory, &rec.Description, &rec.Amount,
			&rec.Date, &rec.Related.Kind, &rec.Related.ID, &rec.IsRecurring, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan financial record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
