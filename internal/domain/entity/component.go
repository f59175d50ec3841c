package entity

import "github.com/shopspring/decimal"

// Component es la proyección de un producto actuando como insumo de un BOM.
// El costo unitario sale de StandardCost; si falta, de AverageCost; si ambos
// faltan, es 0 (catálogo incompleto, degradación deliberada).
type Component struct {
	ID           string
	Code         string
	Name         string
	UnitMeasure  string
	StandardCost *decimal.Decimal
	AverageCost  *decimal.Decimal
}

// UnitCost resuelve el costo unitario con la cadena de fallback
// standard_cost → average_cost → 0.
func (c Component) UnitCost() decimal.Decimal {
	if c.StandardCost != nil {
		return *c.StandardCost
	}
	if c.AverageCost != nil {
		return *c.AverageCost
	}
	return decimal.Zero
}
