// Package seed implementa la carga única de datos de fixture: usuarios,
// clientes, facturas e ingresos, en ese orden.
package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UseCase rutina de seed. Las fases corren en orden fijo porque las facturas
// referencian clientes; dentro de cada fase los inserts viajan en paralelo y
// un fallo individual se registra sin detener al resto (best-effort).
type UseCase struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	revenue   repository.RevenueRepository
}

// NewUseCase construye la rutina de seed.
func NewUseCase(
	users repository.UserRepository,
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	revenue repository.RevenueRepository,
) *UseCase {
	return &UseCase{users: users, customers: customers, invoices: invoices, revenue: revenue}
}

// Run ejecuta las cuatro fases: users → customers → invoices → revenue.
// Devuelve un único resultado global; los fallos por fila ya quedaron en el log.
func (uc *UseCase) Run(ctx context.Context) error {
	if err := uc.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	uc.seedCustomers(ctx)
	uc.seedInvoices(ctx)
	uc.seedRevenue(ctx)
	log.Info().Msg("seed completado")
	return nil
}

// seedUsers invoca primero el procedimiento seed_users() del backend y luego
// inserta los usuarios de fixture con la contraseña hasheada (bcrypt).
func (uc *UseCase) seedUsers(ctx context.Context) error {
	if err := uc.users.EnsureSeedProcedure(ctx); err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(u fixtureUser) {
			defer wg.Done()
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Error().Err(err).Str("email", u.Email).Msg("seed: hash de contraseña")
				return
			}
			user := &entity.User{
				ID:           u.ID,
				Name:         u.Name,
				Email:        u.Email,
				PasswordHash: string(hash),
			}
			if err := uc.users.Create(ctx, user); err != nil {
				log.Error().Err(err).Str("email", u.Email).Msg("seed: insertar usuario")
			}
		}(u)
	}
	wg.Wait()
	return nil
}

func (uc *UseCase) seedCustomers(ctx context.Context) {
	var wg sync.WaitGroup
	for _, c := range customers {
		wg.Add(1)
		go func(c entity.Customer) {
			defer wg.Done()
			if err := uc.customers.Create(ctx, &c); err != nil {
				log.Error().Err(err).Str("customer", c.Name).Msg("seed: insertar cliente")
			}
		}(c)
	}
	wg.Wait()
}

func (uc *UseCase) seedInvoices(ctx context.Context) {
	var wg sync.WaitGroup
	for _, f := range invoices {
		wg.Add(1)
		go func(f fixtureInvoice) {
			defer wg.Done()
			invoice := &entity.Invoice{
				ID:         uuid.New().String(),
				CustomerID: customers[f.CustomerIndex].ID,
				Amount:     f.Amount,
				Date:       f.Date,
				Status:     f.Status,
			}
			if err := uc.invoices.Create(ctx, invoice); err != nil {
				log.Error().Err(err).Str("date", f.Date).Msg("seed: insertar factura")
			}
		}(f)
	}
	wg.Wait()
}

func (uc *UseCase) seedRevenue(ctx context.Context) {
	var wg sync.WaitGroup
	for _, r := range revenue {
		wg.Add(1)
		go func(r entity.Revenue) {
			defer wg.Done()
			if err := uc.revenue.Create(ctx, &r); err != nil {
				log.Error().Err(err).Str("month", r.Month).Msg("seed: insertar ingreso")
			}
		}(r)
	}
	wg.Wait()
}
