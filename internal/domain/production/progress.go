// Package production deriva el avance de una orden de producción a partir de
// sus cantidades planificada/producida y fechas.
package production

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// Progress es el avance derivado de una orden. WillComplete es solo una señal
// informativa: las transiciones de estado las hace el sistema externo.
type Progress struct {
	CompletionPct int
	IsDelayed     bool
	RemainingQty  decimal.Decimal
	WillComplete  bool
}

// Track deriva el avance: porcentaje redondeado y acotado a [0,100]
// (0 si planned_qty == 0), bandera de atraso para órdenes en proceso con
// fecha planificada vencida, y cantidad pendiente nunca negativa.
func Track(order entity.ProductionOrder, now time.Time) Progress {
	pct := 0
	if !order.PlannedQty.IsZero() {
		raw := order.ProducedQty.
			Div(order.PlannedQty).
			Mul(decimal.NewFromInt(100)).
			Round(0)
		pct = int(raw.IntPart())
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
	}

	remaining := order.PlannedQty.Sub(order.ProducedQty)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Progress{
		CompletionPct: pct,
		IsDelayed:     order.Status == entity.OrderStatusINPROGRESS && now.After(order.PlannedEndDate),
		RemainingQty:  remaining,
		WillComplete:  order.ProducedQty.GreaterThanOrEqual(order.PlannedQty),
	}
}

// ValidateOutput valida del lado del cliente el registro de una nueva salida
// de producción: la cantidad debe ser positiva y no exceder lo pendiente.
// Un rechazo aquí nunca llega al backend.
func ValidateOutput(order entity.ProductionOrder, quantity decimal.Decimal) error {
	if !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	remaining := order.PlannedQty.Sub(order.ProducedQty)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	if quantity.GreaterThan(remaining) {
		return domain.ErrExceedsRemaining
	}
	return nil
}

// OutputCompletes indica si registrar quantity alcanzaría la cantidad
// planificada ("la orden quedará completada"): señal informativa, no cambia
// el estado.
func OutputCompletes(order entity.ProductionOrder, quantity decimal.Decimal) bool {
	return order.ProducedQty.Add(quantity).GreaterThanOrEqual(order.PlannedQty)
}
