package entity

import "github.com/shopspring/decimal"

// BomLine es un renglón de la lista de materiales. El motor de costos solo
// lee renglones; nunca los muta.
type BomLine struct {
	ComponentID string
	Quantity    decimal.Decimal // > 0
	ScrapRate   decimal.Decimal // porcentaje, >= 0, default 0
	Notes       string
}

// EffectiveQuantity devuelve la cantidad con factor de merma aplicado:
// quantity * (1 + scrap_rate/100).
func (l BomLine) EffectiveQuantity() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(l.ScrapRate.Div(decimal.NewFromInt(100)))
	return l.Quantity.Mul(factor)
}

// Bom es una lista de materiales con su lote de producción y costos fijos.
// BatchSize debe ser distinto de cero antes de cualquier escalado por cantidad.
type Bom struct {
	ID           string
	ProductID    string
	BatchSize    decimal.Decimal // > 0
	LaborCost    decimal.Decimal
	OverheadCost decimal.Decimal
	Lines        []BomLine
}
