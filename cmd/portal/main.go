package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/vendor-portal/docs"
	appanalytics "github.com/jhoicas/vendor-portal/internal/application/analytics"
	"github.com/jhoicas/vendor-portal/internal/application/auth"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/api"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/vendor-portal/internal/interfaces/http"
	"github.com/jhoicas/vendor-portal/pkg/config"
	"github.com/jhoicas/vendor-portal/pkg/logger"
)

// @title        Vendor Portal BFF
// @version      1.0
// @description  Portal del vendor del marketplace: sesión, registro de marca, productos y dashboard.
// @description  Las rutas protegidas usan la sesión del proceso; no reciben token propio.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando portal")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := session.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesión")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("cerrar almacén de sesión")
		}
	}()

	registry := metrics.NewRegistry()
	client, err := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout(),
		RateLimit: cfg.API.RateLimit,
	}, store, log, metrics.NewGateway(registry))
	if err != nil {
		log.Fatal().Err(err).Msg("cliente del backend")
	}

	var stats ports.AnalyticsGateway = api.MockAnalytics{}
	if cfg.Analytics.Mode == config.AnalyticsModeRemote {
		stats = api.NewAnalyticsService(client)
	}

	authUC := auth.NewAuthUseCase(api.NewAuthService(client), store)
	brandUC := usecase.NewBrandUseCase(api.NewBrandService(client), store)
	productUC := usecase.NewProductUseCase(api.NewProductService(client))
	categoryUC := usecase.NewCategoryUseCase(api.NewCategoryService(client))

	authCtx := portal.NewAuthContext(authUC, brandUC, log)
	client.OnUnauthorized(authCtx)
	// Start corre en segundo plano; mientras tanto el guard responde con espera.
	go authCtx.Start(ctx)

	// El dashboard lee la marca ya resuelta por el contexto de auth.
	brandFromContext := appanalytics.BrandSourceFunc(func(context.Context) (*entity.Brand, error) {
		return authCtx.Snapshot().Brand, nil
	})
	dashboardUC := appanalytics.NewDashboardUseCase(brandFromContext, usecase.NewAnalyticsUseCase(stats), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // 5 imágenes + campos del formulario
	})
	app.Use(recover.New())

	swaggerFile := cfg.HTTP.SwaggerFile
	if swaggerFile != "" {
		if _, err := os.Stat(swaggerFile); err != nil {
			log.Warn().Err(err).Str("file", swaggerFile).Msg("swagger.json no disponible, /docs desactivado")
			swaggerFile = ""
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Auth:        authCtx,
		BrandUC:     brandUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		DashboardUC: dashboardUC,
		Wizard:      portal.NewRegistrationWizard(),
		Metrics:     registry,
		GuardWait:   cfg.HTTP.GuardWait(),
		SwaggerFile: swaggerFile,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("portal detenido")
}
