package billing

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/facturas-dashboard/internal/domain"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

// fakeInvoiceRepo repositorio de facturas en memoria con errores inyectables.
type fakeInvoiceRepo struct {
	mu        sync.Mutex
	store     map[string]entity.Invoice
	customers map[string]entity.Customer

	failCreate error
	failUpdate error
	failDelete error
	failGet    error
	failList   error
	failCount  error
	failStats  error
	stats      *repository.InvoiceStats
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		store:     map[string]entity.Invoice{},
		customers: map[string]entity.Customer{},
	}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[invoice.ID] = *invoice
	return nil
}

// Update replica el contrato del adaptador real: nunca toca la columna date.
func (f *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.store[invoice.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.CustomerID = invoice.CustomerID
	existing.Amount = invoice.Amount
	existing.Status = invoice.Status
	f.store[invoice.ID] = existing
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.store[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.store, id)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.store[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (f *fakeInvoiceRepo) ListLatest(_ context.Context, limit int) ([]repository.InvoiceWithCustomer, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	rows := f.sortedRows("")
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	rows := f.sortedRows(query)
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, query string) (int64, error) {
	if f.failCount != nil {
		return 0, f.failCount
	}
	return int64(len(f.sortedRows(query))), nil
}

func (f *fakeInvoiceRepo) Count(_ context.Context) (int64, error) {
	if f.failCount != nil {
		return 0, f.failCount
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.store)), nil
}

func (f *fakeInvoiceRepo) Stats(_ context.Context) (*repository.InvoiceStats, error) {
	if f.failStats != nil {
		return nil, f.failStats
	}
	return f.stats, nil
}

// sortedRows une facturas con clientes, filtra por nombre O email y ordena
// por fecha descendente (desempate por ID para salida estable).
func (f *fakeInvoiceRepo) sortedRows(query string) []repository.InvoiceWithCustomer {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := strings.ToLower(query)
	var rows []repository.InvoiceWithCustomer
	for _, inv := range f.store {
		c, ok := f.customers[inv.CustomerID]
		if q != "" && (!ok ||
			(!strings.Contains(strings.ToLower(c.Name), q) &&
				!strings.Contains(strings.ToLower(c.Email), q))) {
			continue
		}
		rows = append(rows, repository.InvoiceWithCustomer{
			Invoice:       inv,
			CustomerName:  c.Name,
			CustomerEmail: c.Email,
			CustomerImage: c.ImageURL,
			HasCustomer:   ok,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Invoice.Date != rows[j].Invoice.Date {
			return rows[i].Invoice.Date > rows[j].Invoice.Date
		}
		return rows[i].Invoice.ID < rows[j].Invoice.ID
	})
	return rows
}

// fakeViewCache registra las invalidaciones recibidas.
type fakeViewCache struct {
	mu    sync.Mutex
	paths []string
	fail  error
}

var _ ViewCache = (*fakeViewCache)(nil)

func (f *fakeViewCache) Invalidate(_ context.Context, path string) error {
	if f.fail != nil {
		return f.fail
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return nil
}

// fakeCustomerRepo repositorio de clientes en memoria.
type fakeCustomerRepo struct {
	list []*entity.Customer
	fail error
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if f.fail != nil {
		return f.fail
	}
	f.list = append(f.list, customer)
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.list, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	return int64(len(f.list)), nil
}
