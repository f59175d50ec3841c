package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	"github.com/tu-usuario/mrp-console/internal/domain"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
)

// respondError traduce los tipos de error del dominio y del cliente MRP a
// respuestas HTTP. El caller decide la presentación: aquí no hay toasts ni
// canales globales, solo el resultado tipado de cada operación.
func respondError(c *fiber.Ctx, err error) error {
	var fe domain.FieldErrors
	if errors.As(err, &fe) {
		// Validación local: bloquea el envío, se reporta por campo.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Fields:  fe,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos",
		})
	case errors.Is(err, domain.ErrInvalidBatchSize):
		// Defecto de configuración del BOM: error duro, no degradación.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_BATCH_SIZE", Message: domain.ErrInvalidBatchSize.Error(),
		})
	case errors.Is(err, domain.ErrExceedsRemaining):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "EXCEEDS_REMAINING", Message: domain.ErrExceedsRemaining.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, mrpapi.ErrUpstreamUnavailable):
		// 404 del backend: funcionalidad aún no disponible, no es una falla.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_AVAILABLE", Message: "funcionalidad no disponible en el backend",
		})
	case errors.Is(err, mrpapi.ErrDecode):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "BAD_UPSTREAM_RESPONSE", Message: "respuesta del backend no decodificable",
		})
	}

	var ue *mrpapi.UpstreamError
	if errors.As(err, &ue) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: ue.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
