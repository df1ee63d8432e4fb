package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturas-dashboard/internal/domain"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// filterClause filtro de substring case-insensitive sobre nombre O email del
// cliente. Con query vacío pasa todo. Los comodines se concatenan en el SQL
// para que $1 siga siendo un parámetro plano. Listado y conteo de páginas
// comparten esta cláusula para que nunca diverjan.
const filterClause = `($1 = '' OR c.name ILIKE '%' || $1 || '%' OR c.email ILIKE '%' || $1 || '%')`

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, date, status)
		VALUES ($1, $2, $3, $4::date, $5)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Date, invoice.Status,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerFK
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update actualiza customer_id, amount y status. La columna date no aparece
// en el SET: es inmutable después de la creación.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerFK
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por ID. Un ID inexistente es ErrNotFound: el
// delete no debe tener éxito en silencio.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una factura por ID; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, to_char(date, 'YYYY-MM-DD'), status
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Date, &inv.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListLatest devuelve las `limit` facturas más recientes unidas a su cliente.
func (r *InvoiceRepo) ListLatest(ctx context.Context, limit int) ([]repository.InvoiceWithCustomer, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, to_char(i.date, 'YYYY-MM-DD'), i.status,
		       c.id, c.name, c.email, c.image_url
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoicesWithCustomer(rows)
}

// ListFiltered pagina facturas filtradas por nombre O email del cliente,
// en orden de fecha descendente.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, query string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	sql := `
		SELECT i.id, i.customer_id, i.amount, to_char(i.date, 'YYYY-MM-DD'), i.status,
		       c.id, c.name, c.email, c.image_url
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE ` + filterClause + `
		ORDER BY i.date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, sql, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list filtered invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoicesWithCustomer(rows)
}

// CountFiltered cuenta facturas aplicando el mismo filtro que ListFiltered,
// para que el número de páginas coincida con el listado bajo búsqueda activa.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, query string) (int64, error) {
	sql := `
		SELECT COUNT(*)
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE ` + filterClause
	var n int64
	if err := r.q.QueryRow(ctx, sql, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count filtered invoices: %w", err)
	}
	return n, nil
}

// Count devuelve el total exacto de facturas.
func (r *InvoiceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// Stats invoca la función agregada get_invoice_stats() del lado del servidor.
// (nil, nil) si la función no devuelve filas; el caso de uso aplica ceros.
func (r *InvoiceRepo) Stats(ctx context.Context) (*repository.InvoiceStats, error) {
	var s repository.InvoiceStats
	err := r.q.QueryRow(ctx, `SELECT paid, pending FROM get_invoice_stats()`).Scan(&s.Paid, &s.Pending)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get_invoice_stats: %w", err)
	}
	return &s, nil
}

// scanInvoicesWithCustomer normaliza el join a exactamente un (posible)
// cliente por factura: columnas del cliente en NULL → HasCustomer false.
func scanInvoicesWithCustomer(rows pgx.Rows) ([]repository.InvoiceWithCustomer, error) {
	var list []repository.InvoiceWithCustomer
	for rows.Next() {
		var row repository.InvoiceWithCustomer
		var custID, name, email, image *string
		if err := rows.Scan(
			&row.Invoice.ID, &row.Invoice.CustomerID, &row.Invoice.Amount,
			&row.Invoice.Date, &row.Invoice.Status,
			&custID, &name, &email, &image,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if custID != nil {
			row.HasCustomer = true
			if name != nil {
				row.CustomerName = *name
			}
			if email != nil {
				row.CustomerEmail = *email
			}
			if image != nil {
				row.CustomerImage = *image
			}
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
