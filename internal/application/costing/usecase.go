package costing

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	"github.com/tu-usuario/mrp-console/internal/domain"
	domcosting "github.com/tu-usuario/mrp-console/internal/domain/costing"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

// BomPort abstrae las operaciones de BOM y catálogo contra el backend.
type BomPort interface {
	GetBom(ctx context.Context, bomID string) (entity.Bom, error)
	ListComponents(ctx context.Context, ids []string) ([]entity.Component, error)
	ExplodeBom(ctx context.Context, bomID string, quantity decimal.Decimal) (mrpapi.ExplosionResult, error)
}

// UseCase costea BOMs: rollup local con merma y agregación por unidad, y
// delegación de la explosión multinivel al backend.
type UseCase struct {
	api BomPort
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api BomPort, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log}
}

// GetBomCost obtiene el BOM y su catálogo de componentes en paralelo (se
// esperan juntos; el merge ocurre solo cuando ambos resolvieron, sin estados
// parciales) y calcula el rollup. Si target != nil, el BOM se escala a esa
// cantidad; batch_size == 0 se rechaza con ErrInvalidBatchSize.
func (uc *UseCase) GetBomCost(ctx context.Context, bomID string, target *decimal.Decimal) (dto.BomCostResponse, error) {
	var (
		bom        entity.Bom
		components []entity.Component
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bom, err = uc.api.GetBom(gctx, bomID)
		return err
	})
	g.Go(func() error {
		var err error
		components, err = uc.api.ListComponents(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.BomCostResponse{}, err
	}

	catalog := make(domcosting.Catalog, len(components))
	for _, c := range components {
		catalog[c.ID] = c
	}

	var rollup domcosting.Rollup
	if target != nil {
		var err error
		rollup, err = domcosting.Explode(bom, catalog, *target)
		if err != nil {
			return dto.BomCostResponse{}, err
		}
	} else {
		rollup = domcosting.RollBom(bom, catalog)
	}

	if rollup.UnresolvedCount > 0 {
		uc.log.Warn().
			Str("bom_id", bomID).
			Int("unresolved_components", rollup.UnresolvedCount).
			Msg("BOM con componentes fuera de catálogo: costo material subestimado")
	}

	return toCostResponse(bomID, bom, rollup, catalog), nil
}

// Explode delega la explosión multinivel al backend; el resultado ya viene
// calculado y aquí solo se presenta.
func (uc *UseCase) Explode(ctx context.Context, bomID string, quantity decimal.Decimal) (mrpapi.ExplosionResult, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return mrpapi.ExplosionResult{}, domain.ErrInvalidInput
	}
	return uc.api.ExplodeBom(ctx, bomID, quantity)
}

func toCostResponse(bomID string, bom entity.Bom, r domcosting.Rollup, catalog domcosting.Catalog) dto.BomCostResponse {
	lines := make([]dto.LineCostDTO, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = dto.LineCostDTO{
			ComponentID:       l.ComponentID,
			Quantity:          l.Quantity,
			ScrapRate:         l.ScrapRate,
			EffectiveQuantity: l.EffectiveQuantity,
			UnitCost:          l.UnitCost,
			Subtotal:          l.Subtotal,
			Resolved:          l.Resolved,
		}
	}

	unitTotals := domcosting.AggregateByUnit(bom.Lines, catalog)
	units := make(map[string]dto.UnitTotalDTO, len(unitTotals))
	for unit, t := range unitTotals {
		units[unit] = dto.UnitTotalDTO{Base: t.Base, WithScrap: t.WithScrap}
	}

	return dto.BomCostResponse{
		BomID:           bomID,
		MaterialCost:    r.MaterialCost,
		LaborCost:       r.LaborCost,
		OverheadCost:    r.OverheadCost,
		TotalCost:       r.TotalCost,
		UnresolvedCount: r.UnresolvedCount,
		Lines:           lines,
		Units:           units,
	}
}
