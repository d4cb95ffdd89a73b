package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/vendor-portal/internal/application/analytics"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Auth        *portal.AuthContext
	BrandUC     *usecase.BrandUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Wizard      *portal.RegistrationWizard
	Metrics     prometheus.Gatherer // nil = sin /metrics
	GuardWait   time.Duration
	SwaggerFile string // vacío = sin /docs
}

// Router registra las rutas del portal.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "ok", Service: deps.AppName})
	})
	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
			Title:    "Vendor Portal BFF",
		}))
	}
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth)
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)
	app.Post("/logout", authHandler.Logout)
	app.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren vendor autenticado)
	protected := app.Group("/", RequireSession(deps.Auth, deps.GuardWait))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	// Registro y datos de la marca
	wizard := deps.Wizard
	if wizard == nil {
		wizard = portal.NewRegistrationWizard()
	}
	brandHandler := NewBrandHandler(deps.Auth, deps.BrandUC, wizard)
	protected.Get("/register-brand", brandHandler.Wizard)
	protected.Patch("/register-brand", brandHandler.SetFields)
	protected.Post("/register-brand/next", brandHandler.Next)
	protected.Post("/register-brand/back", brandHandler.Back)
	protected.Post("/register-brand/submit", brandHandler.Submit)
	protected.Get("/brand", brandHandler.MyBrand)
	protected.Put("/brand", brandHandler.Update)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/products", productHandler.List)
	protected.Post("/products/add", productHandler.Create)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	protected.Get("/categories", categoryHandler.List)

	// Menú
	protected.Get("/orders", comingSoon("Orders"))
	protected.Get("/analytics", comingSoon("Analytics"))
	protected.Get("/store", comingSoon("Store Settings"))

	// "/" y cualquier ruta desconocida van al dashboard
	app.Use(toDashboard)
}
