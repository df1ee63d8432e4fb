package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-dashboard/internal/application/analytics"
	"github.com/tu-usuario/facturas-dashboard/internal/application/auth"
	"github.com/tu-usuario/facturas-dashboard/internal/application/billing"
	"github.com/tu-usuario/facturas-dashboard/internal/application/seed"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC   *billing.InvoiceUseCase
	CustomerUC  *billing.CustomerUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.UseCase
	SeedUC      *seed.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Seed (público: disparador externo de un solo uso, sin input)
	seedHandler := NewSeedHandler(deps.SeedUC)
	api.Get("/seed", seedHandler.Run)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/revenue", dashboardHandler.Revenue)
	dashboard.Get("/latest-invoices", dashboardHandler.LatestInvoices)
	dashboard.Get("/cards", dashboardHandler.Cards)

	// Invoices (protegido). /pages antes de /:id para que no lo capture el parámetro.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/pages", invoiceHandler.Pages)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
}
