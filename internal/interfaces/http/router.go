package http

import (
	"github.com/gofiber/fiber/v2"

	appcosting "github.com/tu-usuario/mrp-console/internal/application/costing"
	appkardex "github.com/tu-usuario/mrp-console/internal/application/kardex"
	appproduction "github.com/tu-usuario/mrp-console/internal/application/production"
	appreconcile "github.com/tu-usuario/mrp-console/internal/application/reconcile"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	KardexUC     *appkardex.UseCase
	CostingUC    *appcosting.UseCase
	ReconcileUC  *appreconcile.UseCase
	ProductionUC *appproduction.UseCase
}

// Router registra las rutas de la API. Todas reenvían el bearer token opaco
// hacia el backend MRP (la autenticación vive allá).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", UpstreamAuth())

	// Kardex (vista con saldo acumulado + export CSV)
	kardexHandler := NewKardexHandler(deps.KardexUC)
	api.Get("/kardex", kardexHandler.GetKardex)
	api.Get("/kardex/export", kardexHandler.ExportKardex)

	// BOMs (rollup local y explosión delegada)
	bomHandler := NewBomHandler(deps.CostingUC)
	boms := api.Group("/boms")
	boms.Get("/:id/cost", bomHandler.GetCost)
	boms.Post("/:id/explode", bomHandler.Explode)

	// Conciliación de inventario (ajustes manuales y conteos cíclicos)
	inventoryHandler := NewInventoryHandler(deps.ReconcileUC)
	inv := api.Group("/inventory")
	inv.Post("/adjustments", inventoryHandler.CreateAdjustment)
	inv.Post("/cycle-count", inventoryHandler.CycleCount)

	// Órdenes de producción (avance y registro de salidas)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	orders := api.Group("/production-orders")
	orders.Get("/:id/progress", productionHandler.GetProgress)
	orders.Post("/:id/outputs", productionHandler.RecordOutput)
}
