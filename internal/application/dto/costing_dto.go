package dto

import "github.com/shopspring/decimal"

// LineCostDTO es el detalle de costo de un renglón del BOM. Resolved=false
// marca "costo desconocido" (componente fuera de catálogo) para que la vista
// lo señale en vez de subestimar el total en silencio.
type LineCostDTO struct {
	ComponentID       string          `json:"component_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	ScrapRate         decimal.Decimal `json:"scrap_rate"`
	EffectiveQuantity decimal.Decimal `json:"effective_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Resolved          bool            `json:"resolved"`
}

// UnitTotalDTO totales por unidad de medida (crudo y con merma).
type UnitTotalDTO struct {
	Base      decimal.Decimal `json:"base_total"`
	WithScrap decimal.Decimal `json:"with_scrap_total"`
}

// BomCostResponse es el rollup de costos del BOM.
// Siempre: total_cost == material_cost + labor_cost + overhead_cost.
type BomCostResponse struct {
	BomID           string                  `json:"bom_id"`
	MaterialCost    decimal.Decimal         `json:"material_cost"`
	LaborCost       decimal.Decimal         `json:"labor_cost"`
	OverheadCost    decimal.Decimal         `json:"overhead_cost"`
	TotalCost       decimal.Decimal         `json:"total_cost"`
	UnresolvedCount int                     `json:"unresolved_count"`
	Lines           []LineCostDTO           `json:"lines"`
	Units           map[string]UnitTotalDTO `json:"units"`
}

// ExplodeRequest cantidad objetivo para la explosión del BOM.
type ExplodeRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}
