package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcosting "github.com/tu-usuario/mrp-console/internal/application/costing"
	appkardex "github.com/tu-usuario/mrp-console/internal/application/kardex"
	appproduction "github.com/tu-usuario/mrp-console/internal/application/production"
	appreconcile "github.com/tu-usuario/mrp-console/internal/application/reconcile"
	"github.com/tu-usuario/mrp-console/internal/infrastructure/mrpapi"
	httpRouter "github.com/tu-usuario/mrp-console/internal/interfaces/http"
	"github.com/tu-usuario/mrp-console/pkg/config"
	"github.com/tu-usuario/mrp-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("mrp_api", cfg.MRP.BaseURL).
		Msg("iniciando aplicación")

	// Cliente hacia la API MRP externa: dueña de la explosión multinivel,
	// el netting y toda la persistencia. Este servicio solo deriva vistas.
	client := mrpapi.New(cfg.MRP, log)

	kardexUC := appkardex.NewUseCase(client, log)
	costingUC := appcosting.NewUseCase(client, log)
	reconcileUC := appreconcile.NewUseCase(client, log)
	productionUC := appproduction.NewUseCase(client, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MRP Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		KardexUC:     kardexUC,
		CostingUC:    costingUC,
		ReconcileUC:  reconcileUC,
		ProductionUC: productionUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
