package costing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcosting "github.com/tu-usuario/mrp-console/internal/application/costing"
	"github.com/tu-usuario/mrp-console/internal/domain"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// fakeBomAPI responde BOM y catálogo fijos; registra la explosión delegada.
type fakeBomAPI struct {
	bom        entity.Bom
	components []entity.Component
	bomErr     error

	explodedQty decimal.Decimal
	explosion   mrpapi.ExplosionResult
}

func (f *fakeBomAPI) GetBom(_ context.Context, _ string) (entity.Bom, error) {
	return f.bom, f.bomErr
}

func (f *fakeBomAPI) ListComponents(_ context.Context, _ []string) ([]entity.Component, error) {
	return f.components, nil
}

func (f *fakeBomAPI) ExplodeBom(_ context.Context, _ string, quantity decimal.Decimal) (mrpapi.ExplosionResult, error) {
	f.explodedQty = quantity
	return f.explosion, nil
}

// GetBomCost junta BOM y catálogo, corre el rollup y arma los totales por
// unidad de medida.
func TestGetBomCost_RollupCompleto(t *testing.T) {
	fake := &fakeBomAPI{
		bom: entity.Bom{
			ID:        "bom-1",
			BatchSize: dec("100"),
			LaborCost: dec("50"),
			Lines: []entity.BomLine{
				{ComponentID: "comp-1", Quantity: dec("10"), ScrapRate: dec("10")},
			},
		},
		components: []entity.Component{
			{ID: "comp-1", UnitMeasure: "kg", StandardCost: decPtr("5")},
		},
	}
	uc := appcosting.NewUseCase(fake, logger.Nop())

	resp, err := uc.GetBomCost(context.Background(), "bom-1", nil)
	require.NoError(t, err)

	assert.True(t, resp.MaterialCost.Equal(dec("55")), "10*1.10*5")
	assert.True(t, resp.TotalCost.Equal(dec("105")), "material + labor")
	assert.Equal(t, 0, resp.UnresolvedCount)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].Resolved)
	require.Contains(t, resp.Units, "kg")
	assert.True(t, resp.Units["kg"].WithScrap.Equal(dec("11")))
}

// target escala el BOM; batch_size == 0 se rechaza antes de calcular.
func TestGetBomCost_ConObjetivo(t *testing.T) {
	fake := &fakeBomAPI{
		bom: entity.Bom{
			ID:        "bom-1",
			BatchSize: dec("10"),
			Lines: []entity.BomLine{
				{ComponentID: "comp-1", Quantity: dec("4")},
			},
		},
		components: []entity.Component{
			{ID: "comp-1", StandardCost: decPtr("2")},
		},
	}
	uc := appcosting.NewUseCase(fake, logger.Nop())

	resp, err := uc.GetBomCost(context.Background(), "bom-1", decPtr("25"))
	require.NoError(t, err)
	assert.True(t, resp.MaterialCost.Equal(dec("20")), "factor 2.5: 4*2.5*2")

	fake.bom.BatchSize = decimal.Zero
	_, err = uc.GetBomCost(context.Background(), "bom-1", decPtr("25"))
	assert.ErrorIs(t, err, domain.ErrInvalidBatchSize)
}

// El error de cualquiera de las dos consultas aborta todo: nunca hay merge
// con datos parciales.
func TestGetBomCost_ErrorAbortaSinParciales(t *testing.T) {
	boom := errors.New("backend caído")
	uc := appcosting.NewUseCase(&fakeBomAPI{bomErr: boom}, logger.Nop())

	_, err := uc.GetBomCost(context.Background(), "bom-1", nil)

	assert.ErrorIs(t, err, boom)
}

// La explosión multinivel se delega al backend; cantidad no positiva se
// rechaza localmente.
func TestExplode_DelegaAlBackend(t *testing.T) {
	fake := &fakeBomAPI{explosion: mrpapi.ExplosionResult{
		TotalMaterialCost: dec("350"),
	}}
	uc := appcosting.NewUseCase(fake, logger.Nop())

	result, err := uc.Explode(context.Background(), "bom-1", dec("100"))
	require.NoError(t, err)
	assert.True(t, result.TotalMaterialCost.Equal(dec("350")))
	assert.True(t, fake.explodedQty.Equal(dec("100")))

	_, err = uc.Explode(context.Background(), "bom-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
