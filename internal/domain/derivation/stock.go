package derivation

import "github.com/tu-usuario/rental-pro/internal/domain/entity"

// StockStatus clasificación del nivel de stock de un repuesto.
type StockStatus string

const (
	StockSinStock    StockStatus = "sin_stock"
	StockBajo        StockStatus = "stock_bajo"
	StockNormal      StockStatus = "stock_normal"
	StockDesconocido StockStatus = "desconocido"
)

// ClassifyStock clasifica el stock total (suma sobre todos los almacenes)
// contra el umbral de reposición del repuesto:
//
//	total == 0            → sin_stock
//	0 < total <= minStock → stock_bajo (umbral inclusivo)
//	total >  minStock     → stock_normal
//
// Cantidades negativas o umbral negativo son datos corruptos y clasifican
// como desconocido en lugar de producir un estado falso.
func ClassifyStock(part *entity.SparePart) StockStatus {
	if part == nil || part.MinStock < 0 {
		return StockDesconocido
	}
	for _, qty := range part.StockByWarehouse {
		if qty < 0 {
			return StockDesconocido
		}
	}
	total := part.TotalStock()
	switch {
	case total == 0:
		return StockSinStock
	case total <= part.MinStock:
		return StockBajo
	}
	return StockNormal
}
