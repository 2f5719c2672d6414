package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/estoque-pro/internal/application/state"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
	infraai "github.com/tu-usuario/estoque-pro/internal/infrastructure/ai"
	infraexcel "github.com/tu-usuario/estoque-pro/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/estoque-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/estoque-pro/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/estoque-pro/internal/interfaces/http"
	"github.com/tu-usuario/estoque-pro/pkg/config"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := storage.Open(storage.Config{Path: cfg.Storage.Path, SyncWrites: true}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el storage embebido")
	}
	defer store.Close()

	st := state.New(store, log)

	geminiSvc := infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
	pdfExporter := infrapdf.NewMarotoProductExporter()
	sheetExporter := infraexcel.NewSpreadsheetExporter()

	dashboardUC := usecase.NewDashboardUseCase(st)
	reportUC := usecase.NewReportUseCase(st, pdfExporter, sheetExporter, geminiSvc, log)
	aiUC := usecase.NewAIUseCase(geminiSvc, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // las exportaciones y el análisis por IA tardan
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		State:       st,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AIUC:        aiUC,
		JWT:         cfg.JWT,
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
