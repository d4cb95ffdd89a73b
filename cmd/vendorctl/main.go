package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appanalytics "github.com/jhoicas/vendor-portal/internal/application/analytics"
	"github.com/jhoicas/vendor-portal/internal/application/auth"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/api"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/session"
	"github.com/jhoicas/vendor-portal/internal/interfaces/cli"
	"github.com/jhoicas/vendor-portal/pkg/config"
	"github.com/jhoicas/vendor-portal/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return cli.ExitError
	}

	// Los logs van a stderr para que stdout sea legible por máquinas.
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := session.Open(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("almacén de sesión")
		return cli.ExitError
	}
	defer closeStore()

	client, err := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout(),
		RateLimit: cfg.API.RateLimit,
	}, store, log, nil)
	if err != nil {
		log.Error().Err(err).Msg("cliente del backend")
		return cli.ExitError
	}

	var stats ports.AnalyticsGateway = api.MockAnalytics{}
	if cfg.Analytics.Mode == config.AnalyticsModeRemote {
		stats = api.NewAnalyticsService(client)
	}

	brandUC := usecase.NewBrandUseCase(api.NewBrandService(client), store)
	authCtx := portal.NewAuthContext(auth.NewAuthUseCase(api.NewAuthService(client), store), brandUC, log)
	client.OnUnauthorized(authCtx)
	client.OnUnauthorized(ports.NavigatorFunc(func() {
		log.Warn().Msg("el backend rechazó el token; sesión local borrada")
	}))

	brandFromContext := appanalytics.BrandSourceFunc(func(context.Context) (*entity.Brand, error) {
		return authCtx.Snapshot().Brand, nil
	})

	app := cli.New(cli.Deps{
		Auth:       authCtx,
		Session:    store,
		Brands:     brandUC,
		Products:   usecase.NewProductUseCase(api.NewProductService(client)),
		Categories: usecase.NewCategoryUseCase(api.NewCategoryService(client)),
		Dashboard:  appanalytics.NewDashboardUseCase(brandFromContext, usecase.NewAnalyticsUseCase(stats), log),
		Log:        log,
	}, os.Stdin, os.Stdout, os.Stderr)

	return app.Run(ctx, os.Args[1:])
}
