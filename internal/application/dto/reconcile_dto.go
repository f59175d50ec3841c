package dto

import "github.com/shopspring/decimal"

// AdjustmentRequest body de POST /api/inventory/adjustments. Quantity es
// magnitud; el signo lo decide direction (positive/negative).
type AdjustmentRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	Direction   string          `json:"direction" validate:"required,oneof=positive negative"`
	Reason      string          `json:"reason" validate:"required"`
	LocationID  string          `json:"location_id,omitempty"`
	BatchNumber string          `json:"batch_number,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// AdjustmentResponse confirma el ajuste creado con la cantidad firmada enviada.
type AdjustmentResponse struct {
	MovementID     string          `json:"movement_id"`
	SignedQuantity decimal.Decimal `json:"signed_quantity"`
}

// CycleCountRequest body de POST /api/inventory/cycle-count.
type CycleCountRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	PhysicalCount decimal.Decimal `json:"physical_count"`
	LocationID    string          `json:"location_id,omitempty"`
	BatchNumber   string          `json:"batch_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CycleCountResponse es la varianza conciliada más la decisión de cierre que
// la vista debe respetar: close_after_ms y si debe recargar la vista madre.
type CycleCountResponse struct {
	SystemQuantity decimal.Decimal `json:"system_quantity"`
	PhysicalCount  decimal.Decimal `json:"physical_count"`
	Difference     decimal.Decimal `json:"difference"`
	Message        string          `json:"message"`
	CloseAfterMs   int64           `json:"close_after_ms"`
	Refresh        bool            `json:"refresh"`
}
