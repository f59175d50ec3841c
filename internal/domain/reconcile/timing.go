package reconcile

import (
	"context"
	"time"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// Tiempos de cierre del resultado de un conteo cíclico. La asimetría es una
// decisión de UX deliberada: si no hubo varianza se da tiempo a leer el
// resultado sin forzar recarga; si la hubo, el conteo creó un movimiento
// correctivo y la vista madre debe recargarse.
const (
	CloseDelayNoVariance = 2000 * time.Millisecond
	CloseDelayVariance   = 3000 * time.Millisecond
)

// Decision indica cuánto mostrar el resultado antes de cerrar y si al cerrar
// debe dispararse la recarga de la vista madre.
type Decision struct {
	CloseAfter time.Duration
	Refresh    bool
}

// DecideTiming deriva la decisión de cierre a partir del resultado de varianza:
// difference == 0 → cerrar a los 2000 ms sin recarga;
// difference != 0 → cerrar a los 3000 ms y recargar.
func DecideTiming(v entity.VarianceResult) Decision {
	if v.HasVariance() {
		return Decision{CloseAfter: CloseDelayVariance, Refresh: true}
	}
	return Decision{CloseAfter: CloseDelayNoVariance, Refresh: false}
}

// Run espera el plazo de la decisión y ejecuta los callbacks: onRefresh
// (exactamente una vez, solo si Refresh) y luego onClose. Si el contexto se
// cancela antes del plazo (el modal se cerró), no se ejecuta ninguno: la
// respuesta tardía se descarta de forma determinista.
func (d Decision) Run(ctx context.Context, onClose, onRefresh func()) {
	timer := time.NewTimer(d.CloseAfter)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		if d.Refresh && onRefresh != nil {
			onRefresh()
		}
		if onClose != nil {
			onClose()
		}
	}
}
