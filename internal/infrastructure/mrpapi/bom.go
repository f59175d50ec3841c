package mrpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

type bomLineDTO struct {
	ComponentID string          `json:"component_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	ScrapRate   decimal.Decimal `json:"scrap_rate"`
	Notes       string          `json:"notes"`
}

type bomDTO struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	BatchSize    decimal.Decimal `json:"batch_size"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	OverheadCost decimal.Decimal `json:"overhead_cost"`
	Items        []bomLineDTO    `json:"items"`
}

// GetBom obtiene un BOM con sus renglones.
func (c *Client) GetBom(ctx context.Context, bomID string) (entity.Bom, error) {
	var d bomDTO
	err := c.do(ctx, http.MethodGet, "/boms/"+url.PathEscape(bomID), nil, nil, &d,
		"no se pudo consultar el BOM")
	if err != nil {
		return entity.Bom{}, err
	}
	lines := make([]entity.BomLine, len(d.Items))
	for i, it := range d.Items {
		lines[i] = entity.BomLine{
			ComponentID: it.ComponentID,
			Quantity:    it.Quantity,
			ScrapRate:   it.ScrapRate,
			Notes:       it.Notes,
		}
	}
	return entity.Bom{
		ID:           d.ID,
		ProductID:    d.ProductID,
		BatchSize:    d.BatchSize,
		LaborCost:    d.LaborCost,
		OverheadCost: d.OverheadCost,
		Lines:        lines,
	}, nil
}

type componentDTO struct {
	ID           string           `json:"id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	UnitMeasure  string           `json:"unit_measure"`
	StandardCost *decimal.Decimal `json:"standard_cost"`
	AverageCost  *decimal.Decimal `json:"average_cost"`
}

type componentsEnvelope struct {
	Data []componentDTO `json:"data"`
}

// ListComponents obtiene las proyecciones de producto para un conjunto de IDs.
// Los IDs no encontrados simplemente no vienen en la respuesta: el catálogo
// resultante puede ser incompleto y el motor de costeo lo degrada a costo 0.
func (c *Client) ListComponents(ctx context.Context, ids []string) ([]entity.Component, error) {
	query := url.Values{}
	if len(ids) > 0 {
		query.Set("ids", strings.Join(ids, ","))
	}
	var env componentsEnvelope
	err := c.do(ctx, http.MethodGet, "/products", query, nil, &env,
		"no se pudieron consultar los componentes")
	if err != nil {
		return nil, err
	}
	components := make([]entity.Component, len(env.Data))
	for i, d := range env.Data {
		components[i] = entity.Component{
			ID:           d.ID,
			Code:         d.Code,
			Name:         d.Name,
			UnitMeasure:  d.UnitMeasure,
			StandardCost: d.StandardCost,
			AverageCost:  d.AverageCost,
		}
	}
	return components, nil
}

// Requirement es un requerimiento ya explotado por el backend (multinivel).
// El cliente solo lo presenta; no recalcula nada sobre él.
type Requirement struct {
	ComponentCode    string          `json:"component_code"`
	ComponentName    string          `json:"component_name"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	UnitMeasure      string          `json:"unit_measure"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
}

// ExplosionResult es la salida de POST /boms/{id}/explode.
type ExplosionResult struct {
	Requirements      []Requirement   `json:"requirements"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
	TotalLaborCost    decimal.Decimal `json:"total_labor_cost"`
	TotalOverheadCost decimal.Decimal `json:"total_overhead_cost"`
}

type explodeRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ExplodeBom delega la explosión multinivel al backend para una cantidad de
// producción objetivo.
func (c *Client) ExplodeBom(ctx context.Context, bomID string, quantity decimal.Decimal) (ExplosionResult, error) {
	var result ExplosionResult
	path := fmt.Sprintf("/boms/%s/explode", url.PathEscape(bomID))
	err := c.do(ctx, http.MethodPost, path, nil, explodeRequest{Quantity: quantity}, &result,
		"no se pudo explotar el BOM")
	if err != nil {
		return ExplosionResult{}, err
	}
	return result, nil
}
