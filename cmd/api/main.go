package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/facturas-dashboard/internal/application/analytics"
	"github.com/tu-usuario/facturas-dashboard/internal/application/auth"
	"github.com/tu-usuario/facturas-dashboard/internal/application/billing"
	"github.com/tu-usuario/facturas-dashboard/internal/application/seed"
	"github.com/tu-usuario/facturas-dashboard/internal/infrastructure/postgres"
	"github.com/tu-usuario/facturas-dashboard/internal/infrastructure/viewcache"
	httpRouter "github.com/tu-usuario/facturas-dashboard/internal/interfaces/http"
	"github.com/tu-usuario/facturas-dashboard/pkg/config"
	"github.com/tu-usuario/facturas-dashboard/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Señal de invalidación de vistas: Redis si está configurado, noop si no.
	var cache billing.ViewCache
	if cfg.Redis.Addr != "" {
		redisCache, err := viewcache.NewRedisViewCache(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		cache = redisCache
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: invalidación de vistas en modo noop")
		cache = viewcache.NewNoopViewCache()
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, cache)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	dashboardUC := analytics.NewDashboardUseCase(invoiceRepo, customerRepo, revenueRepo)
	seedUC := seed.NewUseCase(userRepo, customerRepo, invoiceRepo, revenueRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:   invoiceUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		SeedUC:      seedUC,
		JWTSecret:   cfg.JWT.Secret,
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
