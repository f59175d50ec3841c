// Package kardex construye el libro cronológico de movimientos de un producto
// con saldo acumulado, y su exportación CSV determinista.
package kardex

import "github.com/tu-usuario/mrp-console/internal/domain/entity"

// Effect es el efecto de un movimiento sobre el saldo disponible.
type Effect int

const (
	EffectAdd Effect = iota
	EffectSubtract
	EffectNeutral
	// EffectAmbiguous marca un ADJUSTMENT sin ubicación origen ni destino.
	// Para el saldo se comporta como neutral, pero se distingue para que un
	// ajuste con cantidad real que no afecta ninguna ubicación sea detectable
	// río arriba en vez de plegarse en silencio a NEUTRAL.
	EffectAmbiguous
)

// String devuelve el nombre del efecto para logs y respuestas.
func (e Effect) String() string {
	switch e {
	case EffectAdd:
		return "ADD"
	case EffectSubtract:
		return "SUBTRACT"
	case EffectNeutral:
		return "NEUTRAL"
	case EffectAmbiguous:
		return "AMBIGUOUS"
	}
	return "UNKNOWN"
}

// Classify decide si un movimiento suma, resta o deja igual el saldo.
// TRANSFER es siempre neutral: redistribuye entre ubicaciones pero nunca
// cambia el total disponible del producto. ADJUSTMENT depende de sus campos
// de ubicación: destino presente suma, origen presente resta.
func Classify(m entity.InventoryMovement) Effect {
	switch m.MovementType {
	case entity.MovementTypeENTRY,
		entity.MovementTypePRODUCTIONENTRY,
		entity.MovementTypePURCHASEENTRY,
		entity.MovementTypeRETURN:
		return EffectAdd
	case entity.MovementTypeEXIT,
		entity.MovementTypePRODUCTIONEXIT,
		entity.MovementTypeSALEEXIT,
		entity.MovementTypeWASTE:
		return EffectSubtract
	case entity.MovementTypeTRANSFER:
		return EffectNeutral
	case entity.MovementTypeADJUSTMENT:
		if m.ToLocationID != "" {
			return EffectAdd
		}
		if m.FromLocationID != "" {
			return EffectSubtract
		}
		return EffectAmbiguous
	}
	return EffectNeutral
}
