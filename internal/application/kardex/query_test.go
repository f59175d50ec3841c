package kardex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Cambiar un filtro estando en una página avanzada reinicia a la página 1:
// una combinación filtro+página obsoleta nunca llega al backend.
func TestQuery_CambioDeFiltroReiniciaPagina(t *testing.T) {
	q := NewQuery("prod-1")
	q.SetPage(3)
	assert.Equal(t, 3, q.Page())

	q.SetMovementType("ENTRY")
	assert.Equal(t, 1, q.Page(), "cambiar tipo reinicia la página")

	q.SetPage(5)
	q.SetLocation("loc-2")
	assert.Equal(t, 1, q.Page(), "cambiar ubicación reinicia la página")

	q.SetPage(4)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q.SetDateRange(&start, nil)
	assert.Equal(t, 1, q.Page(), "cambiar fechas reinicia la página")
}

// Reasignar el mismo valor no es un cambio: la página se conserva.
func TestQuery_MismoValorConservaPagina(t *testing.T) {
	q := NewQuery("prod-1")
	q.SetMovementType("ENTRY")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q.SetDateRange(&start, nil)
	q.SetPage(3)

	q.SetMovementType("ENTRY")
	sameStart := start
	q.SetDateRange(&sameStart, nil)
	q.SetLocation("")

	assert.Equal(t, 3, q.Page())
}

// Valores fuera de rango degradan a los defaults.
func TestQuery_Defaults(t *testing.T) {
	q := NewQuery("prod-1")
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, DefaultPageSize, q.Limit())

	q.SetPage(0)
	assert.Equal(t, 1, q.Page())

	q.SetLimit(-5)
	assert.Equal(t, DefaultPageSize, q.Limit())
}

// SetLimit con un valor nuevo vuelve a la página 1.
func TestQuery_CambioDeLimiteReiniciaPagina(t *testing.T) {
	q := NewQuery("prod-1")
	q.SetPage(2)

	q.SetLimit(50)

	assert.Equal(t, 50, q.Limit())
	assert.Equal(t, 1, q.Page())
}
