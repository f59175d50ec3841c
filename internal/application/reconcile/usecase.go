package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/tu-usuario/mrp-console/internal/domain/entity"
	domreconcile "github.com/tu-usuario/mrp-console/internal/domain/reconcile"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

// InventoryPort abstrae las mutaciones de inventario contra el backend.
type InventoryPort interface {
	CreateAdjustment(ctx context.Context, req mrpapi.AdjustmentRequest) (entity.InventoryMovement, error)
	SubmitCycleCount(ctx context.Context, req mrpapi.CycleCountRequest) (entity.VarianceResult, error)
}

// UseCase concilia inventario: ajustes manuales con signo y conteos cíclicos.
// Los dos modos son mutuamente excluyentes por invocación.
type UseCase struct {
	api InventoryPort
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api InventoryPort, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log}
}

// SubmitAdjustment valida el ajuste manual y lo envía con la cantidad firmada.
// Si la validación falla, nada llega a la red: devuelve los errores por campo.
func (uc *UseCase) SubmitAdjustment(ctx context.Context, input domreconcile.AdjustmentInput) (entity.InventoryMovement, error) {
	if fe := input.Validate(); fe.HasErrors() {
		return entity.InventoryMovement{}, fe
	}

	signed := input.SignedQuantity()
	mov, err := uc.api.CreateAdjustment(ctx, mrpapi.AdjustmentRequest{
		ProductID:   input.ProductID,
		Quantity:    signed,
		Reason:      input.Reason,
		LocationID:  input.LocationID,
		BatchNumber: input.BatchNumber,
		Notes:       input.Notes,
		Reference:   uuid.New().String(),
	})
	if err != nil {
		return entity.InventoryMovement{}, err
	}

	uc.log.Info().
		Str("product_id", input.ProductID).
		Str("movement_id", mov.ID).
		Str("reason", input.Reason).
		Str("signed_quantity", signed.String()).
		Msg("ajuste manual registrado")
	return mov, nil
}

// SubmitCycleCount valida el conteo, lo concilia contra el backend y devuelve
// la varianza junto con la decisión de cierre de la vista (2000 ms sin
// recarga si no hubo varianza; 3000 ms con recarga si la hubo).
func (uc *UseCase) SubmitCycleCount(ctx context.Context, input domreconcile.CycleCountInput) (entity.VarianceResult, domreconcile.Decision, error) {
	if fe := input.Validate(); fe.HasErrors() {
		return entity.VarianceResult{}, domreconcile.Decision{}, fe
	}

	variance, err := uc.api.SubmitCycleCount(ctx, mrpapi.CycleCountRequest{
		ProductID:     input.ProductID,
		PhysicalCount: input.PhysicalCount,
		LocationID:    input.LocationID,
		BatchNumber:   input.BatchNumber,
		Notes:         input.Notes,
	})
	if err != nil {
		return entity.VarianceResult{}, domreconcile.Decision{}, err
	}

	decision := domreconcile.DecideTiming(variance)
	if variance.HasVariance() {
		uc.log.Info().
			Str("product_id", input.ProductID).
			Str("difference", variance.Difference.String()).
			Msg("conteo cíclico con varianza: el backend creó un movimiento correctivo")
	}
	return variance, decision, nil
}
