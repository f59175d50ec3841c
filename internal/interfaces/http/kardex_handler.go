package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mrp-console/internal/application/dto"
	appkardex "github.com/tu-usuario/mrp-console/internal/application/kardex"
)

// KardexHandler maneja la vista kardex de un producto y su exportación CSV.
type KardexHandler struct {
	uc *appkardex.UseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *appkardex.UseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// GetKardex godoc
// @Summary      Kardex de un producto con saldo acumulado
// @Tags         kardex
// @Produce      json
// @Param        product_id     query  string  true   "Producto (UUID)"
// @Param        location_id    query  string  false  "Filtrar por ubicación"
// @Param        movement_type  query  string  false  "Filtrar por tipo de movimiento"
// @Param        start_date     query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        end_date       query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        page           query  int     false  "Página (default 1)"
// @Param        limit          query  int     false  "Tamaño de página (default 20)"
// @Success      200  {object}  dto.KardexPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex [get]
func (h *KardexHandler) GetKardex(c *fiber.Ctx) error {
	q, err := queryFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	page, err := h.uc.GetLedger(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// ExportKardex godoc
// @Summary      Exportar el kardex mostrado como CSV
// @Tags         kardex
// @Produce      text/csv
// @Param        product_id    query  string  true   "Producto (UUID)"
// @Param        product_code  query  string  false  "Código del producto para el nombre del archivo"
// @Success      200  {string}  string  "CSV"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex/export [get]
func (h *KardexHandler) ExportKardex(c *fiber.Ctx) error {
	q, err := queryFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	filename, data, err := h.uc.ExportCSV(c.UserContext(), q, c.Query("product_code"), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// queryFromRequest arma la consulta del kardex desde los query params usando
// los setters etiquetados (cualquier filtro reinicia la página a 1; la
// página pedida se aplica al final).
func queryFromRequest(c *fiber.Ctx) (appkardex.Query, error) {
	productID := c.Query("product_id")
	if productID == "" {
		return appkardex.Query{}, fiber.NewError(fiber.StatusBadRequest, "product_id es obligatorio")
	}

	q := appkardex.NewQuery(productID)
	q.SetLocation(c.Query("location_id"))
	q.SetMovementType(c.Query("movement_type"))

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		return appkardex.Query{}, err
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		return appkardex.Query{}, err
	}
	q.SetDateRange(start, end)

	if limit := c.QueryInt("limit"); limit > 0 {
		q.SetLimit(limit)
	}
	if page := c.QueryInt("page"); page > 0 {
		q.SetPage(page)
	}
	return q, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "fecha inválida: "+s)
}
