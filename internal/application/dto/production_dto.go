package dto

import "github.com/shopspring/decimal"

// ProgressResponse avance derivado de una orden de producción.
type ProgressResponse struct {
	OrderID              string          `json:"order_id"`
	Status               string          `json:"status"`
	PlannedQty           decimal.Decimal `json:"planned_qty"`
	ProducedQty          decimal.Decimal `json:"produced_qty"`
	CompletionPercentage int             `json:"completion_percentage"`
	IsDelayed            bool            `json:"is_delayed"`
	RemainingQty         decimal.Decimal `json:"remaining_qty"`
	WillComplete         bool            `json:"will_complete"`
}

// RecordOutputRequest body de POST /api/production-orders/:id/outputs.
type RecordOutputRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Notes    string          `json:"notes,omitempty"`
}

// RecordOutputResponse confirma el registro; will_complete es una señal
// informativa, la transición de estado la decide el backend.
type RecordOutputResponse struct {
	WillComplete bool `json:"will_complete"`
}
