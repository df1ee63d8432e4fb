// seed carga los datos de fixture (usuarios, clientes, facturas, ingresos)
// directamente contra la base de datos, como alternativa al disparador HTTP
// GET /api/seed.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/tu-usuario/facturas-dashboard/internal/application/seed"
	"github.com/tu-usuario/facturas-dashboard/internal/infrastructure/postgres"
	"github.com/tu-usuario/facturas-dashboard/pkg/config"
	"github.com/tu-usuario/facturas-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := seed.NewUseCase(
		postgres.NewUserRepository(pool),
		postgres.NewCustomerRepository(pool),
		postgres.NewInvoiceRepository(pool),
		postgres.NewRevenueRepository(pool),
	)
	if err := uc.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed fallido")
	}
}
