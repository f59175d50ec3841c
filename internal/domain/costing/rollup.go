// Package costing implementa el motor de costeo de listas de materiales:
// rollup de costo material/mano de obra/indirectos con factor de merma,
// agregación por unidad de medida y escalado por cantidad objetivo.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// Catalog resuelve componentes por ID. Un ID ausente no es un error del motor:
// el renglón aporta costo 0 pero conserva su cantidad en los agregados.
type Catalog map[string]entity.Component

// Resolve busca el componente; ok=false si no está en el catálogo.
func (c Catalog) Resolve(id string) (entity.Component, bool) {
	comp, ok := c[id]
	return comp, ok
}

// LineCost es el detalle de costo de un renglón del BOM. Resolved distingue
// explícitamente "costo conocido" de "componente no resoluble" para que la
// capa de presentación pueda marcar el costo como desconocido en vez de
// subestimar totales en silencio.
type LineCost struct {
	ComponentID       string
	Quantity          decimal.Decimal
	ScrapRate         decimal.Decimal
	EffectiveQuantity decimal.Decimal // quantity * (1 + scrap_rate/100)
	UnitCost          decimal.Decimal
	Subtotal          decimal.Decimal // effective_quantity * unit_cost
	Resolved          bool
}

// Rollup es el resultado del costeo. Invariante:
// TotalCost = MaterialCost + LaborCost + OverheadCost, siempre.
type Rollup struct {
	MaterialCost    decimal.Decimal
	LaborCost       decimal.Decimal
	OverheadCost    decimal.Decimal
	TotalCost       decimal.Decimal
	Lines           []LineCost
	UnresolvedCount int
}

// Roll calcula el costo de un conjunto de renglones contra un catálogo.
// Renglones con componente no resoluble aportan exactamente 0 al costo
// material y quedan marcados Resolved=false; nunca se lanza error por
// catálogo incompleto. labor/overhead nil degradan a 0.
func Roll(lines []entity.BomLine, cat Catalog, labor, overhead *decimal.Decimal) Rollup {
	material := decimal.Zero
	out := make([]LineCost, 0, len(lines))
	unresolved := 0

	for _, line := range lines {
		effective := line.EffectiveQuantity()
		lc := LineCost{
			ComponentID:       line.ComponentID,
			Quantity:          line.Quantity,
			ScrapRate:         line.ScrapRate,
			EffectiveQuantity: effective,
		}
		if comp, ok := cat.Resolve(line.ComponentID); ok {
			lc.UnitCost = comp.UnitCost()
			lc.Subtotal = effective.Mul(lc.UnitCost)
			lc.Resolved = true
			material = material.Add(lc.Subtotal)
		} else {
			// Catálogo incompleto: el renglón sigue consumiendo cantidad en los
			// agregados pero aporta 0 al costo material.
			lc.UnitCost = decimal.Zero
			lc.Subtotal = decimal.Zero
			unresolved++
		}
		out = append(out, lc)
	}

	lab := orZero(labor)
	ovh := orZero(overhead)
	return Rollup{
		MaterialCost:    material,
		LaborCost:       lab,
		OverheadCost:    ovh,
		TotalCost:       material.Add(lab).Add(ovh),
		Lines:           out,
		UnresolvedCount: unresolved,
	}
}

// RollBom costea un BOM completo usando sus costos fijos.
func RollBom(bom entity.Bom, cat Catalog) Rollup {
	return Roll(bom.Lines, cat, &bom.LaborCost, &bom.OverheadCost)
}

// Explode escala un BOM a una cantidad objetivo: factor = target / batch_size;
// cada cantidad de renglón y cada costo se multiplica por el factor.
// BatchSize == 0 es un estado inválido del BOM y se rechaza con error duro,
// a diferencia del componente faltante que degrada en silencio: lo primero es
// un defecto de configuración, lo segundo un catálogo incompleto.
func Explode(bom entity.Bom, cat Catalog, target decimal.Decimal) (Rollup, error) {
	if bom.BatchSize.IsZero() {
		return Rollup{}, domain.ErrInvalidBatchSize
	}
	factor := target.Div(bom.BatchSize)

	scaled := make([]entity.BomLine, len(bom.Lines))
	for i, line := range bom.Lines {
		scaled[i] = line
		scaled[i].Quantity = line.Quantity.Mul(factor)
	}
	labor := bom.LaborCost.Mul(factor)
	overhead := bom.OverheadCost.Mul(factor)
	return Roll(scaled, cat, &labor, &overhead), nil
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
