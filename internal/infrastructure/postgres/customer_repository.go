package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/facturas-dashboard/internal/domain"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. ImageURL vacío se guarda como NULL.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, NULLIF($4, ''))`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.ImageURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// List devuelve todos los clientes ordenados por nombre. image_url NULL llega
// como string vacío; el fallback lo aplica el caso de uso.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, COALESCE(image_url, '')
		FROM customers ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count devuelve el total exacto de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
