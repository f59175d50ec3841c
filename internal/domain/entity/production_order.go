package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden de producción. Las transiciones de estado son
// responsabilidad del sistema externo; aquí solo se leen.
const (
	OrderStatusPENDING    = "PENDING"
	OrderStatusINPROGRESS = "IN_PROGRESS"
	OrderStatusCOMPLETED  = "COMPLETED"
	OrderStatusCANCELLED  = "CANCELLED"
)

// ProductionOrder es la proyección de solo lectura usada para seguimiento de avance.
type ProductionOrder struct {
	ID             string
	ProductID      string
	PlannedQty     decimal.Decimal
	ProducedQty    decimal.Decimal
	PlannedEndDate time.Time
	Status         string
}
