package repository

import (
	"context"

	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
)

// InvoiceWithCustomer factura unida a los datos visibles de su cliente.
// El join se normaliza aquí: siempre un (posible) cliente por factura, nunca
// una secuencia. HasCustomer es false cuando el LEFT JOIN no resolvió.
type InvoiceWithCustomer struct {
	Invoice       entity.Invoice
	CustomerName  string
	CustomerEmail string
	CustomerImage string
	HasCustomer   bool
}

// InvoiceStats totales pagado/pendiente devueltos por get_invoice_stats().
type InvoiceStats struct {
	Paid    int64
	Pending int64
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update modifica customer_id, amount y status. Nunca toca date.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete elimina por ID; devuelve domain.ErrNotFound si no existía.
	Delete(ctx context.Context, id string) error
	// GetByID devuelve (nil, nil) si no hay factura con ese ID.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListLatest devuelve las `limit` facturas más recientes por fecha descendente.
	ListLatest(ctx context.Context, limit int) ([]InvoiceWithCustomer, error)
	// ListFiltered pagina facturas cuyo cliente coincide por nombre O email
	// (substring, case-insensitive). query vacío lista todas.
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]InvoiceWithCustomer, error)
	// CountFiltered cuenta facturas aplicando el mismo filtro que ListFiltered.
	CountFiltered(ctx context.Context, query string) (int64, error)
	Count(ctx context.Context) (int64, error)
	// Stats invoca la función agregada get_invoice_stats() del lado del servidor.
	Stats(ctx context.Context) (*InvoiceStats, error)
}
