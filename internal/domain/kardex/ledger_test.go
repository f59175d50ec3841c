package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	"github.com/tu-usuario/mrp-console/internal/domain/kardex"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mov(id, movType, qty string, opts ...func(*entity.InventoryMovement)) entity.InventoryMovement {
	m := entity.InventoryMovement{
		ID:           id,
		ProductID:    "prod-1",
		MovementType: movType,
		Quantity:     dec(qty),
		MovementDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func toLocation(id string) func(*entity.InventoryMovement) {
	return func(m *entity.InventoryMovement) { m.ToLocationID = id }
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo acumulado: pasada hacia adelante + inversión para presentación
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: [ENTRY +100, EXIT 30, TRANSFER 20, ADJUSTMENT(destino) +5]
// produce saldos hacia adelante [100, 70, 70, 75]; invertido para mostrar,
// el orden es [ADJUSTMENT, TRANSFER, EXIT, ENTRY] con saldos [75, 70, 70, 100].
// Los saldos viajan con su movimiento: la inversión no los recalcula.
func TestBuildLedger_VectorDeReferencia(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov("m1", entity.MovementTypeENTRY, "100"),
		mov("m2", entity.MovementTypeEXIT, "30"),
		mov("m3", entity.MovementTypeTRANSFER, "20"),
		mov("m4", entity.MovementTypeADJUSTMENT, "5", toLocation("loc-2")),
	}

	entries := kardex.BuildLedger(movements)

	require.Len(t, entries, 4)
	wantOrder := []string{"m4", "m3", "m2", "m1"}
	wantBalance := []string{"75", "70", "70", "100"}
	for i := range entries {
		assert.Equal(t, wantOrder[i], entries[i].Movement.ID, "renglón %d fuera de orden", i)
		assert.True(t, entries[i].RunningBalance.Equal(dec(wantBalance[i])),
			"renglón %d: saldo esperado %s, fue %s", i, wantBalance[i], entries[i].RunningBalance)
	}
}

// Una secuencia solo de TRANSFER deja el saldo final igual al inicial (0):
// los traslados redistribuyen entre ubicaciones, nunca cambian el total.
func TestBuildLedger_NeutralidadDeTraslados(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov("m1", entity.MovementTypeTRANSFER, "20"),
		mov("m2", entity.MovementTypeTRANSFER, "35"),
		mov("m3", entity.MovementTypeTRANSFER, "7"),
	}

	entries := kardex.BuildLedger(movements)

	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, e.RunningBalance.IsZero(), "todo traslado deja saldo 0")
	}
	assert.True(t, kardex.FinalBalance(movements).IsZero())
}

// Un ajuste sin ubicación no mueve el saldo pero queda marcado en el renglón.
func TestBuildLedger_AjusteAmbiguoNoMueveSaldo(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov("m1", entity.MovementTypeENTRY, "50"),
		mov("m2", entity.MovementTypeADJUSTMENT, "10"), // sin origen ni destino
	}

	entries := kardex.BuildLedger(movements)

	require.Len(t, entries, 2)
	// entries[0] es m2 (más reciente primero)
	assert.True(t, entries[0].Ambiguous())
	assert.True(t, entries[0].RunningBalance.Equal(dec("50")), "el saldo no cambia")
	assert.Equal(t, 1, kardex.CountAmbiguous(entries))
}

// Ledger vacío: sin renglones, sin pánico.
func TestBuildLedger_Vacio(t *testing.T) {
	assert.Empty(t, kardex.BuildLedger(nil))
	assert.True(t, kardex.FinalBalance(nil).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación contra el saldo de sistema
// ──────────────────────────────────────────────────────────────────────────────

// La suma de efectos con signo de un conjunto cerrado debe igualar el saldo
// registrado por el sistema: el kardex es vista derivada, no fuente de verdad.
func TestVerifyBalance_Consistente(t *testing.T) {
	movements := []entity.InventoryMovement{
		mov("m1", entity.MovementTypePURCHASEENTRY, "100"),
		mov("m2", entity.MovementTypeSALEEXIT, "40"),
		mov("m3", entity.MovementTypeWASTE, "5"),
	}

	diff, ok := kardex.VerifyBalance(movements, dec("55"))
	assert.True(t, ok)
	assert.True(t, diff.IsZero())

	diff, ok = kardex.VerifyBalance(movements, dec("60"))
	assert.False(t, ok, "saldo de sistema distinto señala inconsistencia")
	assert.True(t, diff.Equal(dec("5")))
}
