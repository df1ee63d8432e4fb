// Package analytics contiene los casos de uso de solo lectura que alimentan
// las tarjetas y gráficas del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
	"github.com/tu-usuario/facturas-dashboard/pkg/currency"
)

// latestLimit número de facturas en el widget de recientes.
const latestLimit = 5

// DashboardUseCase lecturas del dashboard. Cada operación es independiente y
// sin estado; las tarjetas de resumen pueden observar snapshots distintos de
// los datos porque sus consultas viajan en paralelo sin transacción.
type DashboardUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	revenue   repository.RevenueRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	revenue repository.RevenueRepository,
) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, customers: customers, revenue: revenue}
}

// Revenue devuelve los ingresos mensuales en orden de inserción.
// Propaga el error del backend: sin esta serie la gráfica no puede renderizar.
func (uc *DashboardUseCase) Revenue(ctx context.Context) ([]dto.RevenueResponse, error) {
	list, err := uc.revenue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", err)
	}
	out := make([]dto.RevenueResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RevenueResponse{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}

// LatestInvoices devuelve las 5 facturas más recientes por fecha descendente,
// con nombre/email/imagen del cliente ya resueltos. Cuando el join no resuelve
// cliente se sustituyen "Unknown" / "No email" / imagen de fallback.
// Degrada a lista vacía con log si el backend falla.
func (uc *DashboardUseCase) LatestInvoices(ctx context.Context) []dto.LatestInvoiceResponse {
	rows, err := uc.invoices.ListLatest(ctx, latestLimit)
	if err != nil {
		log.Error().Err(err).Msg("dashboard: facturas recientes")
		return []dto.LatestInvoiceResponse{}
	}

	out := make([]dto.LatestInvoiceResponse, 0, len(rows))
	for _, row := range rows {
		name, email, image := row.CustomerName, row.CustomerEmail, row.CustomerImage
		if !row.HasCustomer {
			name, email = "Unknown", "No email"
		}
		if image == "" {
			image = entity.FallbackAvatar
		}
		out = append(out, dto.LatestInvoiceResponse{
			ID:       row.Invoice.ID,
			Name:     name,
			Email:    email,
			ImageURL: image,
			Amount:   currency.FormatCents(row.Invoice.Amount),
		})
	}
	return out
}

// CardSummary compone las tarjetas del dashboard.
//
// Tres consultas en paralelo con semántica join-all:
//  1. Count(invoices)           → NumberOfInvoices
//  2. Count(customers)          → NumberOfCustomers
//  3. get_invoice_stats()       → TotalPaidInvoices + TotalPendingInvoices
//
// Si cualquiera falla, la operación completa falla: nunca se actúa sobre
// resultados parciales.
func (uc *DashboardUseCase) CardSummary(ctx context.Context) (*dto.CardSummaryResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type statsResult struct {
		stats *repository.InvoiceStats
		err   error
	}

	invoicesCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	statsCh := make(chan statsResult, 1)

	go func() {
		n, err := uc.invoices.Count(ctx)
		invoicesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.customers.Count(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		stats, err := uc.invoices.Stats(ctx)
		statsCh <- statsResult{stats, err}
	}()

	invoices := <-invoicesCh
	customers := <-customersCh
	stats := <-statsCh

	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de facturas: %w", invoices.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: get_invoice_stats: %w", stats.err)
	}

	// La función agregada puede no devolver filas; los campos faltantes valen 0.
	var paid, pending int64
	if stats.stats != nil {
		paid, pending = stats.stats.Paid, stats.stats.Pending
	}

	return &dto.CardSummaryResponse{
		NumberOfInvoices:     invoices.n,
		NumberOfCustomers:    customers.n,
		TotalPaidInvoices:    currency.FormatCents(paid),
		TotalPendingInvoices: currency.FormatCents(pending),
	}, nil
}
