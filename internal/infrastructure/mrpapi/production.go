package mrpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

type productionOrderDTO struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	PlannedQty     decimal.Decimal `json:"planned_qty"`
	ProducedQty    decimal.Decimal `json:"produced_qty"`
	PlannedEndDate time.Time       `json:"planned_end_date"`
	Status         string          `json:"status"`
}

// GetProductionOrder obtiene la proyección de solo lectura de una orden.
func (c *Client) GetProductionOrder(ctx context.Context, orderID string) (entity.ProductionOrder, error) {
	var d productionOrderDTO
	err := c.do(ctx, http.MethodGet, "/production-orders/"+url.PathEscape(orderID), nil, nil, &d,
		"no se pudo consultar la orden de producción")
	if err != nil {
		return entity.ProductionOrder{}, err
	}
	return entity.ProductionOrder{
		ID:             d.ID,
		ProductID:      d.ProductID,
		PlannedQty:     d.PlannedQty,
		ProducedQty:    d.ProducedQty,
		PlannedEndDate: d.PlannedEndDate,
		Status:         d.Status,
	}, nil
}

type recordOutputRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// RecordOutput registra una salida de producción ya validada localmente.
// Las transiciones de estado de la orden las decide el backend.
func (c *Client) RecordOutput(ctx context.Context, orderID string, quantity decimal.Decimal, notes string) error {
	path := fmt.Sprintf("/production-orders/%s/outputs", url.PathEscape(orderID))
	return c.do(ctx, http.MethodPost, path, nil, recordOutputRequest{Quantity: quantity, Notes: notes}, nil,
		"no se pudo registrar la salida de producción")
}
