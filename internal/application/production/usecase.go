package production

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	domproduction "github.com/tu-usuario/mrp-console/internal/domain/production"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

// OrdersPort abstrae las operaciones de órdenes de producción contra el backend.
type OrdersPort interface {
	GetProductionOrder(ctx context.Context, orderID string) (entity.ProductionOrder, error)
	RecordOutput(ctx context.Context, orderID string, quantity decimal.Decimal, notes string) error
}

// UseCase deriva el avance de órdenes de producción y registra salidas con
// validación local previa.
type UseCase struct {
	api OrdersPort
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api OrdersPort, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log}
}

// GetProgress consulta la orden y deriva su avance con el reloj recibido.
func (uc *UseCase) GetProgress(ctx context.Context, orderID string, now time.Time) (dto.ProgressResponse, error) {
	order, err := uc.api.GetProductionOrder(ctx, orderID)
	if err != nil {
		return dto.ProgressResponse{}, err
	}
	p := domproduction.Track(order, now)
	return dto.ProgressResponse{
		OrderID:              order.ID,
		Status:               order.Status,
		PlannedQty:           order.PlannedQty,
		ProducedQty:          order.ProducedQty,
		CompletionPercentage: p.CompletionPct,
		IsDelayed:            p.IsDelayed,
		RemainingQty:         p.RemainingQty,
		WillComplete:         p.WillComplete,
	}, nil
}

// RecordOutput valida localmente la nueva salida (rechazo sin viaje al
// backend si excede lo pendiente) y la registra. WillComplete es informativo:
// alcanzar lo planificado no cambia el estado de la orden desde aquí.
func (uc *UseCase) RecordOutput(ctx context.Context, orderID string, quantity decimal.Decimal, notes string) (dto.RecordOutputResponse, error) {
	order, err := uc.api.GetProductionOrder(ctx, orderID)
	if err != nil {
		return dto.RecordOutputResponse{}, err
	}
	if err := domproduction.ValidateOutput(order, quantity); err != nil {
		return dto.RecordOutputResponse{}, err
	}

	willComplete := domproduction.OutputCompletes(order, quantity)
	if err := uc.api.RecordOutput(ctx, orderID, quantity, notes); err != nil {
		return dto.RecordOutputResponse{}, err
	}

	if willComplete {
		uc.log.Info().
			Str("order_id", orderID).
			Msg("la orden quedará completada; la transición de estado la decide el backend")
	}
	return dto.RecordOutputResponse{WillComplete: willComplete}, nil
}
