// Package reconcile implementa la conciliación de inventario: ajustes
// manuales con signo y conteos cíclicos contra la cantidad de sistema.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// Direction indica el sentido de un ajuste manual.
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// Razones de ajuste permitidas. "Otro" habilita texto libre en notas.
var AdjustmentReasons = []string{
	"Conteo físico",
	"Merma",
	"Daño",
	"Vencimiento",
	"Error de registro",
	"Devolución no registrada",
	"Otro",
}

// IsValidReason indica si la razón pertenece al catálogo.
func IsValidReason(r string) bool {
	for _, reason := range AdjustmentReasons {
		if reason == r {
			return true
		}
	}
	return false
}

// AdjustmentInput es un ajuste manual con signo. Quantity es magnitud; el
// signo del payload enviado lo determina Direction.
type AdjustmentInput struct {
	ProductID   string
	Quantity    decimal.Decimal // magnitud > 0
	Direction   Direction
	Reason      string
	LocationID  string
	BatchNumber string
	Notes       string
}

// Validate aplica la validación local por campo. Un resultado con errores
// bloquea el envío por completo: nunca llega a la red.
func (in AdjustmentInput) Validate() domain.FieldErrors {
	fe := domain.FieldErrors{}
	if in.ProductID == "" {
		fe.Add("product_id", "seleccione un producto")
	}
	if in.Quantity.IsZero() {
		fe.Add("quantity", "la cantidad no puede ser cero")
	}
	if in.Quantity.IsNegative() {
		fe.Add("quantity", "la cantidad debe ser una magnitud positiva")
	}
	if in.Direction != DirectionPositive && in.Direction != DirectionNegative {
		fe.Add("direction", "la dirección debe ser positive o negative")
	}
	if in.Reason == "" {
		fe.Add("reason", "la razón del ajuste es obligatoria")
	} else if !IsValidReason(in.Reason) {
		fe.Add("reason", "razón fuera del catálogo permitido")
	}
	return fe
}

// SignedQuantity devuelve la cantidad con signo para el payload:
// negative → -|quantity|, positive → |quantity|.
func (in AdjustmentInput) SignedQuantity() decimal.Decimal {
	magnitude := in.Quantity.Abs()
	if in.Direction == DirectionNegative {
		return magnitude.Neg()
	}
	return magnitude
}

// CycleCountInput es un conteo físico a conciliar contra el sistema.
type CycleCountInput struct {
	ProductID     string
	PhysicalCount decimal.Decimal // >= 0
	LocationID    string
	BatchNumber   string
	Notes         string
}

// Validate aplica la validación local por campo del conteo cíclico.
func (in CycleCountInput) Validate() domain.FieldErrors {
	fe := domain.FieldErrors{}
	if in.ProductID == "" {
		fe.Add("product_id", "seleccione un producto")
	}
	if in.PhysicalCount.IsNegative() {
		fe.Add("physical_count", "el conteo físico no puede ser negativo")
	}
	return fe
}

// NewVariance construye el resultado de varianza local:
// difference = physical_count - system_quantity.
func NewVariance(systemQty, physicalCount decimal.Decimal, message string) entity.VarianceResult {
	return entity.VarianceResult{
		SystemQuantity: systemQty,
		PhysicalCount:  physicalCount,
		Difference:     physicalCount.Sub(systemQty),
		Message:        message,
	}
}
