package repository

import (
	"time"

	"github.com/tu-usuario/rental-pro/internal/domain/entity"
)

// FinancialRecordRepository puerto de persistencia para movimientos financieros.
type FinancialRecordRepository interface {
	Create(r *entity.FinancialRecord) error
	List() ([]*entity.FinancialRecord, error)

	// ListByDateRange devuelve los movimientos con fecha en [from, to)
	// (inicio inclusivo, fin exclusivo — semántica de mes calendario).
	ListByDateRange(from, to time.Time) ([]*entity.FinancialRecord, error)

	ListByRelated(ref entity.EntityRef) ([]*entity.FinancialRecord, error)
}
