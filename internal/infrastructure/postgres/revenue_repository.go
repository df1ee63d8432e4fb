package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo implementación de RevenueRepository sobre PostgreSQL.
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// Create inserta un ingreso mensual (append-only).
func (r *RevenueRepo) Create(ctx context.Context, revenue *entity.Revenue) error {
	_, err := r.q.Exec(ctx, `INSERT INTO revenue (month, revenue) VALUES ($1, $2)`,
		revenue.Month, revenue.Revenue,
	)
	if err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}

// List devuelve los ingresos en orden de inserción (la columna serial id
// preserva ese orden).
func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	rows, err := r.q.Query(ctx, `SELECT month, revenue FROM revenue ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}
