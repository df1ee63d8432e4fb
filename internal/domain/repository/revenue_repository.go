package repository

import (
	"context"

	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
)

// RevenueRepository define el puerto de persistencia para Revenue (append-only).
type RevenueRepository interface {
	Create(ctx context.Context, revenue *entity.Revenue) error
	// List devuelve los ingresos en orden de inserción.
	List(ctx context.Context) ([]*entity.Revenue, error)
}
