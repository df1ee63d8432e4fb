package repository

import (
	"context"

	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// En este sistema los clientes solo se crean vía seed; no hay update/delete.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context) ([]*entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
