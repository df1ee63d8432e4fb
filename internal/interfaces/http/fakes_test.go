package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/facturas-dashboard/internal/domain"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

// memInvoiceRepo backend en memoria para levantar la app completa en tests.
type memInvoiceRepo struct {
	mu        sync.Mutex
	rows      map[string]entity.Invoice
	customers map[string]entity.Customer
}

var _ repository.InvoiceRepository = (*memInvoiceRepo)(nil)

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{
		rows:      map[string]entity.Invoice{},
		customers: map[string]entity.Customer{},
	}
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[inv.CustomerID]; !ok {
		return domain.ErrCustomerFK
	}
	r.rows[inv.ID] = *inv
	return nil
}

func (r *memInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.rows[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	next := *inv
	next.Date = prev.Date
	r.rows[inv.ID] = next
	return nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *memInvoiceRepo) sorted() []repository.InvoiceWithCustomer {
	out := make([]repository.InvoiceWithCustomer, 0, len(r.rows))
	for _, inv := range r.rows {
		row := repository.InvoiceWithCustomer{Invoice: inv}
		if c, ok := r.customers[inv.CustomerID]; ok {
			row.HasCustomer = true
			row.CustomerName = c.Name
			row.CustomerEmail = c.Email
			row.CustomerImage = c.ImageURL
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Invoice.Date != out[j].Invoice.Date {
			return out[i].Invoice.Date > out[j].Invoice.Date
		}
		return out[i].Invoice.ID < out[j].Invoice.ID
	})
	return out
}

func (r *memInvoiceRepo) ListLatest(_ context.Context, limit int) ([]repository.InvoiceWithCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.sorted()
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := filterRows(r.sorted(), query)
	if offset >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memInvoiceRepo) CountFiltered(_ context.Context, query string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(filterRows(r.sorted(), query))), nil
}

func (r *memInvoiceRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memInvoiceRepo) Stats(_ context.Context) (*repository.InvoiceStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repository.InvoiceStats{}
	for _, inv := range r.rows {
		switch inv.Status {
		case entity.StatusPaid:
			stats.Paid += inv.Amount
		case entity.StatusPending:
			stats.Pending += inv.Amount
		}
	}
	return stats, nil
}

func filterRows(rows []repository.InvoiceWithCustomer, query string) []repository.InvoiceWithCustomer {
	if query == "" {
		return rows
	}
	out := rows[:0:0]
	for _, row := range rows {
		if containsFold(row.CustomerName, query) || containsFold(row.CustomerEmail, query) {
			out = append(out, row)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type memCustomerRepo struct {
	mu   sync.Mutex
	rows []entity.Customer
}

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *c)
	return nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.rows))
	for i := range r.rows {
		c := r.rows[i]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCustomerRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

type memRevenueRepo struct {
	mu   sync.Mutex
	rows []entity.Revenue
}

var _ repository.RevenueRepository = (*memRevenueRepo)(nil)

func (r *memRevenueRepo) Create(_ context.Context, rev *entity.Revenue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *rev)
	return nil
}

func (r *memRevenueRepo) List(_ context.Context) ([]*entity.Revenue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Revenue, 0, len(r.rows))
	for i := range r.rows {
		rev := r.rows[i]
		out = append(out, &rev)
	}
	return out, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	rows  map[string]entity.User // por email
	procs int
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: map[string]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[u.Email] = *u
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) EnsureSeedProcedure(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs++
	return nil
}

// nopViewCache caché de vista que nunca falla.
type nopViewCache struct{}

func (nopViewCache) Invalidate(context.Context, string) error { return nil }
