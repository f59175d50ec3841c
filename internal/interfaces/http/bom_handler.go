package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appcosting "github.com/tu-usuario/mrp-console/internal/application/costing"
	"github.com/tu-usuario/mrp-console/internal/application/dto"
)

// BomHandler maneja el costeo y la explosión de BOMs.
type BomHandler struct {
	uc *appcosting.UseCase
}

// NewBomHandler construye el handler.
func NewBomHandler(uc *appcosting.UseCase) *BomHandler {
	return &BomHandler{uc: uc}
}

// GetCost godoc
// @Summary      Rollup de costos de un BOM (material, mano de obra, indirectos)
// @Tags         boms
// @Produce      json
// @Param        id        path   string  true   "BOM (UUID)"
// @Param        quantity  query  string  false  "Cantidad objetivo: escala el BOM por quantity/batch_size"
// @Success      200  {object}  dto.BomCostResponse
// @Failure      422  {object}  dto.ErrorResponse  "batch_size inválido"
// @Router       /api/boms/{id}/cost [get]
func (h *BomHandler) GetCost(c *fiber.Ctx) error {
	var target *decimal.Decimal
	if raw := c.Query("quantity"); raw != "" {
		qty, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "quantity inválida",
			})
		}
		target = &qty
	}

	resp, err := h.uc.GetBomCost(c.UserContext(), c.Params("id"), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Explode godoc
// @Summary      Explosión multinivel del BOM (delegada al backend)
// @Tags         boms
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "BOM (UUID)"
// @Param        body  body  dto.ExplodeRequest true  "quantity"
// @Success      200  {object}  mrpapi.ExplosionResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/boms/{id}/explode [post]
func (h *BomHandler) Explode(c *fiber.Ctx) error {
	var in dto.ExplodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "quantity es obligatoria",
		})
	}

	result, err := h.uc.Explode(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
