package kardex

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// Entry es un renglón del kardex: el movimiento, su efecto y el saldo
// disponible inmediatamente después de aplicarlo.
type Entry struct {
	Movement       entity.InventoryMovement
	Effect         Effect
	RunningBalance decimal.Decimal
}

// Ambiguous indica si el renglón es un ajuste sin ubicación (ver EffectAmbiguous).
func (e Entry) Ambiguous() bool { return e.Effect == EffectAmbiguous }

// BuildLedger recibe movimientos en orden cronológico ASCENDENTE y devuelve
// el kardex listo para presentación (más reciente primero).
//
// El diseño es de dos pasadas y debe conservarse tal cual: primero una pasada
// hacia adelante del más antiguo al más reciente acumulando el saldo, y luego
// una inversión solo de orden para mostrar. Los saldos viajan con su
// movimiento y NO se recalculan tras invertir; una sola pasada hacia atrás
// produce saldos incorrectos.
func BuildLedger(movements []entity.InventoryMovement) []Entry {
	entries := make([]Entry, len(movements))
	balance := decimal.Zero

	for i, m := range movements {
		effect := Classify(m)
		switch effect {
		case EffectAdd:
			balance = balance.Add(m.Quantity)
		case EffectSubtract:
			balance = balance.Sub(m.Quantity)
			// EffectNeutral y EffectAmbiguous no mueven el saldo
		}
		entries[i] = Entry{Movement: m, Effect: effect, RunningBalance: balance}
	}

	// Inversión para presentación: solo cambia el orden de los renglones.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// FinalBalance devuelve el saldo tras aplicar todos los movimientos
// (en orden cronológico ascendente).
func FinalBalance(movements []entity.InventoryMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		switch Classify(m) {
		case EffectAdd:
			balance = balance.Add(m.Quantity)
		case EffectSubtract:
			balance = balance.Sub(m.Quantity)
		}
	}
	return balance
}

// VerifyBalance contrasta la suma de efectos con signo de un conjunto cerrado
// de movimientos contra el saldo registrado por el sistema. El kardex es una
// vista derivada, nunca fuente de verdad: una diferencia distinta de cero
// señala inconsistencia con el backend.
func VerifyBalance(movements []entity.InventoryMovement, systemBalance decimal.Decimal) (diff decimal.Decimal, ok bool) {
	diff = systemBalance.Sub(FinalBalance(movements))
	return diff, diff.IsZero()
}

// CountAmbiguous cuenta los renglones ambiguos del kardex para reportarlos
// ruidosamente (log de advertencia en la capa de aplicación).
func CountAmbiguous(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Ambiguous() {
			n++
		}
	}
	return n
}
