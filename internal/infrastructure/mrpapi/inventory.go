package mrpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
)

// MovementsQuery son los filtros de GET /inventory/movements.
type MovementsQuery struct {
	ProductID    string
	LocationID   string
	MovementType string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	Limit        int
}

// MovementsPage es una página de movimientos en orden cronológico ascendente
// (ascendente por id, que el backend garantiza cronológico).
type MovementsPage struct {
	Movements  []entity.InventoryMovement
	Total      int
	TotalPages int
}

type movementDTO struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	MovementType      string          `json:"movement_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	FromLocationID    string          `json:"from_location_id"`
	ToLocationID      string          `json:"to_location_id"`
	MovementDate      time.Time       `json:"movement_date"`
	BatchNumber       string          `json:"batch_number"`
	ReferenceDocument string          `json:"reference_document"`
	Notes             string          `json:"notes"`
	User              string          `json:"user"`
}

func (d movementDTO) toEntity() entity.InventoryMovement {
	return entity.InventoryMovement{
		ID:                d.ID,
		ProductID:         d.ProductID,
		MovementType:      d.MovementType,
		Quantity:          d.Quantity,
		FromLocationID:    d.FromLocationID,
		ToLocationID:      d.ToLocationID,
		MovementDate:      d.MovementDate,
		BatchNumber:       d.BatchNumber,
		ReferenceDocument: d.ReferenceDocument,
		Notes:             d.Notes,
		User:              d.User,
	}
}

type movementsEnvelope struct {
	Data []movementDTO `json:"data"`
	Meta struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	} `json:"meta"`
}

// ListMovements consulta los movimientos de un producto con filtros y paginación.
func (c *Client) ListMovements(ctx context.Context, q MovementsQuery) (MovementsPage, error) {
	query := url.Values{}
	if q.ProductID != "" {
		query.Set("product_id", q.ProductID)
	}
	if q.LocationID != "" {
		query.Set("location_id", q.LocationID)
	}
	if q.MovementType != "" {
		query.Set("movement_type", q.MovementType)
	}
	if q.StartDate != nil {
		query.Set("start_date", q.StartDate.Format(time.RFC3339))
	}
	if q.EndDate != nil {
		query.Set("end_date", q.EndDate.Format(time.RFC3339))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var env movementsEnvelope
	err := c.do(ctx, http.MethodGet, "/inventory/movements", query, nil, &env,
		"no se pudieron consultar los movimientos de inventario")
	if err != nil {
		return MovementsPage{}, err
	}

	movements := make([]entity.InventoryMovement, len(env.Data))
	for i, d := range env.Data {
		movements[i] = d.toEntity()
	}
	return MovementsPage{
		Movements:  movements,
		Total:      env.Meta.Total,
		TotalPages: env.Meta.TotalPages,
	}, nil
}

// AdjustmentRequest es el payload de POST /inventory/adjustments.
// Quantity ya viene con signo (lo aporta el conciliador).
type AdjustmentRequest struct {
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason"`
	LocationID  string          `json:"location_id,omitempty"`
	BatchNumber string          `json:"batch_number,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Reference   string          `json:"reference,omitempty"`
}

// CreateAdjustment registra un ajuste manual y devuelve el movimiento creado.
func (c *Client) CreateAdjustment(ctx context.Context, req AdjustmentRequest) (entity.InventoryMovement, error) {
	var d movementDTO
	err := c.do(ctx, http.MethodPost, "/inventory/adjustments", nil, req, &d,
		"no se pudo registrar el ajuste de inventario")
	if err != nil {
		return entity.InventoryMovement{}, err
	}
	return d.toEntity(), nil
}

// CycleCountRequest es el payload de POST /inventory/cycle-count.
type CycleCountRequest struct {
	ProductID     string          `json:"product_id"`
	PhysicalCount decimal.Decimal `json:"physical_count"`
	LocationID    string          `json:"location_id,omitempty"`
	BatchNumber   string          `json:"batch_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type varianceDTO struct {
	SystemQuantity decimal.Decimal `json:"system_quantity"`
	PhysicalCount  decimal.Decimal `json:"physical_count"`
	Difference     decimal.Decimal `json:"difference"`
	Message        string          `json:"message"`
}

// SubmitCycleCount envía un conteo cíclico; el backend concilia y devuelve la
// varianza (creando el movimiento correctivo si aplica).
func (c *Client) SubmitCycleCount(ctx context.Context, req CycleCountRequest) (entity.VarianceResult, error) {
	var d varianceDTO
	err := c.do(ctx, http.MethodPost, "/inventory/cycle-count", nil, req, &d,
		"no se pudo conciliar el conteo cíclico")
	if err != nil {
		return entity.VarianceResult{}, err
	}
	return entity.VarianceResult{
		SystemQuantity: d.SystemQuantity,
		PhysicalCount:  d.PhysicalCount,
		Difference:     d.Difference,
		Message:        d.Message,
	}, nil
}
