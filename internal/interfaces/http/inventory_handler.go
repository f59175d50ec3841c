package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	appreconcile "github.com/tu-usuario/mrp-console/internal/application/reconcile"
	domreconcile "github.com/tu-usuario/mrp-console/internal/domain/reconcile"
)

// validate valida los DTOs de entrada con tags struct antes de pasar al
// dominio; la validación de negocio por campo vive en el dominio.
var validate = validator.New()

// InventoryHandler maneja las mutaciones de conciliación de inventario:
// ajustes manuales y conteos cíclicos.
type InventoryHandler struct {
	uc *appreconcile.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appreconcile.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateAdjustment godoc
// @Summary      Registrar ajuste manual con signo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "product_id, quantity (magnitud), direction, reason"
// @Success      201  {object}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse  "validación por campo"
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) CreateAdjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	input := domreconcile.AdjustmentInput{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Direction:   domreconcile.Direction(in.Direction),
		Reason:      in.Reason,
		LocationID:  in.LocationID,
		BatchNumber: in.BatchNumber,
		Notes:       in.Notes,
	}
	mov, err := h.uc.SubmitAdjustment(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AdjustmentResponse{
		MovementID:     mov.ID,
		SignedQuantity: input.SignedQuantity(),
	})
}

// CycleCount godoc
// @Summary      Conciliar conteo físico contra cantidad de sistema
// @Description  Devuelve la varianza y la decisión de cierre de la vista:
//               2000 ms sin recarga si difference == 0; 3000 ms con recarga si hubo varianza.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CycleCountRequest  true  "product_id, physical_count"
// @Success      200  {object}  dto.CycleCountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/cycle-count [post]
func (h *InventoryHandler) CycleCount(c *fiber.Ctx) error {
	var in dto.CycleCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	variance, decision, err := h.uc.SubmitCycleCount(c.UserContext(), domreconcile.CycleCountInput{
		ProductID:     in.ProductID,
		PhysicalCount: in.PhysicalCount,
		LocationID:    in.LocationID,
		BatchNumber:   in.BatchNumber,
		Notes:         in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.CycleCountResponse{
		SystemQuantity: variance.SystemQuantity,
		PhysicalCount:  variance.PhysicalCount,
		Difference:     variance.Difference,
		Message:        variance.Message,
		CloseAfterMs:   decision.CloseAfter.Milliseconds(),
		Refresh:        decision.Refresh,
	})
}
