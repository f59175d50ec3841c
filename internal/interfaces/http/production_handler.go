package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	appproduction "github.com/tu-usuario/mrp-console/internal/application/production"
)

// ProductionHandler maneja el seguimiento de avance y el registro de salidas
// de órdenes de producción.
type ProductionHandler struct {
	uc *appproduction.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *appproduction.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// GetProgress godoc
// @Summary      Avance de una orden de producción
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "Orden (UUID)"
// @Success      200  {object}  dto.ProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production-orders/{id}/progress [get]
func (h *ProductionHandler) GetProgress(c *fiber.Ctx) error {
	resp, err := h.uc.GetProgress(c.UserContext(), c.Params("id"), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RecordOutput godoc
// @Summary      Registrar salida de producción
// @Description  Rechaza del lado del cliente (sin viaje al backend) cantidades
//               que excedan lo pendiente por producir.
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Orden (UUID)"
// @Param        body  body  dto.RecordOutputRequest  true  "quantity"
// @Success      201  {object}  dto.RecordOutputResponse
// @Failure      422  {object}  dto.ErrorResponse  "cantidad excede lo pendiente"
// @Router       /api/production-orders/{id}/outputs [post]
func (h *ProductionHandler) RecordOutput(c *fiber.Ctx) error {
	var in dto.RecordOutputRequest
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

	resp, err := h.uc.RecordOutput(c.UserContext(), c.Params("id"), in.Quantity, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
