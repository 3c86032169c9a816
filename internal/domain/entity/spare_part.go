package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePart representa un repuesto con stock por almacén (multi-almacén).
// El stock total es siempre la suma de StockByWarehouse; nunca se almacena
// materializado. Cantidades por almacén nunca negativas.
type SparePart struct {
	ID                  string
	Code                string // código único
	Name                string
	Brand               string
	UnitPrice           decimal.Decimal
	MinStock            int            // umbral de reposición
	StockByWarehouse    map[string]int // warehouseID → cantidad
	CompatibleMachinery []string       // IDs de maquinaria compatible
	Suppliers           []string
	CreatedAt           time.Time
}

// TotalStock suma las cantidades de todos los almacenes.
func (p *SparePart) TotalStock() int {
	total := 0
	for _, qty := range p.StockByWarehouse {
		total += qty
	}
	return total
}
