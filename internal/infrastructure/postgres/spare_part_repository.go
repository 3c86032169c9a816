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

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// SparePartRepo implementación del puerto SparePartRepository sobre PostgreSQL.
// El stock por almacén vive en spare_part_stock (una fila por par
// repuesto/almacén) y se ensambla en el mapa StockByWarehouse al leer.
type SparePartRepo struct {
	q Querier
}

// NewSparePartRepository construye el adaptador de persistencia para repuestos.
func NewSparePartRepository(q Querier) *SparePartRepo {
	return &SparePartRepo{q: q}
}

const sparePartColumns = `id, code, name, brand, unit_price, min_stock,
	compatible_machinery, suppliers, created_at`

// Create persiste el repuesto y sus filas de stock inicial.
func (r *SparePartRepo) Create(p *entity.SparePart) error {
	query := `
		INSERT INTO spare_parts (` + sparePartColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Code, p.Name, p.Brand, p.UnitPrice, p.MinStock,
		p.CompatibleMachinery, p.Suppliers, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert spare part: %w", err)
	}
	for warehouseID, qty := range p.StockByWarehouse {
		if err := r.upsertStock(p.ID, warehouseID, qty); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un repuesto con su stock por almacén.
func (r *SparePartRepo) GetByID(id string) (*entity.SparePart, error) {
	return r.getBy(`id = $1`, id)
}

// GetByCode obtiene un repuesto por código.
func (r *SparePartRepo) GetByCode(code string) (*entity.SparePart, error) {
	return r.getBy(`code = $1`, code)
}

func (r *SparePartRepo) getBy(where, arg string) (*entity.SparePart, error) {
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts WHERE ` + where
	p, err := scanSparePart(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	if err := r.loadStock(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update actualiza los datos del repuesto (el stock se maneja vía AdjustStock).
func (r *SparePartRepo) Update(p *entity.SparePart) error {
	query := `
		UPDATE spare_parts SET code = $2, name = $3, brand = $4, unit_price = $5,
			min_stock = $6, compatible_machinery = $7, suppliers = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Code, p.Name, p.Brand, p.UnitPrice, p.MinStock,
		p.CompatibleMachinery, p.Suppliers,
	)
	if err != nil {
		return fmt.Errorf("update spare part: %w", err)
	}
	return nil
}

// List lista todos los repuestos con su stock por almacén.
func (r *SparePartRepo) List() ([]*entity.SparePart, error) {
	query := `SELECT ` + sparePartColumns + ` FROM spare_parts ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SparePart
	for rows.Next() {
		p, err := scanSparePart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := r.loadStock(p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// AdjustStock suma delta al stock del repuesto en el almacén. El UPDATE lleva
// la guarda de no-negatividad en el WHERE, así el chequeo y el descuento son
// una sola operación atómica.
func (r *SparePartRepo) AdjustStock(partID, warehouseID string, delta int) error {
	ctx := context.Background()
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM spare_parts WHERE id = $1)`, partID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check spare part: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE spare_part_stock SET quantity = quantity + $3
		WHERE spare_part_id = $1 AND warehouse_id = $2 AND quantity + $3 >= 0`,
		partID, warehouseID, delta)
	if err != nil {
		return fmt.Errorf("adjust spare part stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	// Sin fila afectada: o no existe la fila de stock o el delta la dejaría negativa.
	if delta < 0 {
		return domain.ErrInsufficientStock
	}
	return r.upsertStock(partID, warehouseID, delta)
}

func (r *SparePartRepo) upsertStock(partID, warehouseID string, qty int) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO spare_part_stock (spare_part_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (spare_part_id, warehouse_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		partID, warehouseID, qty)
	if err != nil {
		return fmt.Errorf("upsert spare part stock: %w", err)
	}
	return nil
}

func (r *SparePartRepo) loadStock(p *entity.SparePart) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT warehouse_id, quantity FROM spare_part_stock WHERE spare_part_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load spare part stock: %w", err)
	}
	defer rows.Close()
	p.StockByWarehouse = make(map[string]int)
	for rows.Next() {
		var warehouseID string
		var qty int
		if err := rows.Scan(&warehouseID, &qty); err != nil {
			return fmt.Errorf("scan spare part stock: %w", err)
		}
		p.StockByWarehouse[warehouseID] = qty
	}
	return rows.Err()
}

func scanSparePart(row pgx.Row) (*entity.SparePart, error) {
	var p entity.SparePart
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Brand, &p.UnitPrice, &p.MinStock,
		&p.CompatibleMachinery, &p.Suppliers, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
