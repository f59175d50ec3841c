package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
)

// UpstreamAuth propaga el bearer token entrante hacia el cliente MRP a través
// del contexto. El token es opaco para este servicio: la autenticación y la
// autorización viven en el sistema externo.
func UpstreamAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			token := strings.TrimPrefix(auth, "Bearer ")
			c.SetUserContext(mrpapi.WithToken(c.UserContext(), token))
		}
		return c.Next()
	}
}
