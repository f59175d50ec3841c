package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// UnitTotal acumula cantidades de una unidad de medida: la suma cruda y la
// suma con factor de merma aplicado.
type UnitTotal struct {
	Base      decimal.Decimal
	WithScrap decimal.Decimal
}

// AggregateByUnit agrupa las cantidades de los renglones por unidad de medida.
// Los renglones cuya unidad no se puede resolver (componente fuera del
// catálogo) se omiten por completo: es un apoyo visual "best effort",
// no un total autoritativo, y no se reporta error por omisiones.
func AggregateByUnit(lines []entity.BomLine, cat Catalog) map[string]UnitTotal {
	totals := make(map[string]UnitTotal)
	for _, line := range lines {
		comp, ok := cat.Resolve(line.ComponentID)
		if !ok {
			continue
		}
		t := totals[comp.UnitMeasure]
		t.Base = t.Base.Add(line.Quantity)
		t.WithScrap = t.WithScrap.Add(line.EffectiveQuantity())
		totals[comp.UnitMeasure] = t
	}
	return totals
}
