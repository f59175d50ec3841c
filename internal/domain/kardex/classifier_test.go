package kardex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	"github.com/tu-usuario/mrp-console/internal/domain/kardex"
)

// Clasificación del conjunto cerrado de tipos: entradas suman, salidas restan,
// TRANSFER siempre neutral.
func TestClassify_TiposFijos(t *testing.T) {
	cases := []struct {
		movementType string
		want         kardex.Effect
	}{
		{entity.MovementTypeENTRY, kardex.EffectAdd},
		{entity.MovementTypePRODUCTIONENTRY, kardex.EffectAdd},
		{entity.MovementTypePURCHASEENTRY, kardex.EffectAdd},
		{entity.MovementTypeRETURN, kardex.EffectAdd},
		{entity.MovementTypeEXIT, kardex.EffectSubtract},
		{entity.MovementTypePRODUCTIONEXIT, kardex.EffectSubtract},
		{entity.MovementTypeSALEEXIT, kardex.EffectSubtract},
		{entity.MovementTypeWASTE, kardex.EffectSubtract},
		{entity.MovementTypeTRANSFER, kardex.EffectNeutral},
	}
	for _, tc := range cases {
		t.Run(tc.movementType, func(t *testing.T) {
			got := kardex.Classify(entity.InventoryMovement{MovementType: tc.movementType})
			assert.Equal(t, tc.want, got)
		})
	}
}

// ADJUSTMENT depende de sus ubicaciones: destino presente suma, origen
// presente resta; destino manda si vienen ambas.
func TestClassify_AjustePorUbicacion(t *testing.T) {
	conDestino := entity.InventoryMovement{
		MovementType: entity.MovementTypeADJUSTMENT,
		ToLocationID: "loc-2",
	}
	assert.Equal(t, kardex.EffectAdd, kardex.Classify(conDestino))

	conOrigen := entity.InventoryMovement{
		MovementType:   entity.MovementTypeADJUSTMENT,
		FromLocationID: "loc-1",
	}
	assert.Equal(t, kardex.EffectSubtract, kardex.Classify(conOrigen))
}

// Un ajuste sin ubicación origen ni destino se clasifica AMBIGUOUS: neutral
// para el saldo pero detectable, porque casi seguro es un vacío de captura
// río arriba y no un no-op intencional.
func TestClassify_AjusteSinUbicacionEsAmbiguo(t *testing.T) {
	m := entity.InventoryMovement{MovementType: entity.MovementTypeADJUSTMENT}

	got := kardex.Classify(m)

	assert.Equal(t, kardex.EffectAmbiguous, got)
	assert.Equal(t, "AMBIGUOUS", got.String())
}
