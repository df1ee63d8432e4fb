package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
	"github.com/tu-usuario/facturas-dashboard/pkg/currency"
)

// pageSize tamaño fijo de página del listado de facturas.
const pageSize = 10

// InvoiceUseCase casos de uso de lectura y escritura sobre facturas.
//
// Política de fallo por operación (contrato explícito, ver DESIGN.md):
//   - Create/Update/Delete: devuelven error; nunca más de una escritura,
//     una invalidación de caché y una redirección (esa última la emite el handler).
//   - GetByID, ListFiltered, CountPages: degradan con log (nil / vacío / 1).
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	cache    ViewCache
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, cache ViewCache) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, cache: cache}
}

// Create valida el formulario, sella la factura con la fecha actual (UTC,
// YYYY-MM-DD) y un ID nuevo, y la inserta. En éxito invalida la vista del
// listado exactamente una vez.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceFormInput) (*FormErrors, error) {
	form, errs := ParseInvoiceForm(in)
	if !errs.Ok() {
		log.Warn().Interface("errors", errs.Fields).Msg("crear factura: validación fallida")
		return errs, nil
	}

	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Date:       time.Now().UTC().Format("2006-01-02"),
		Status:     form.Status,
	}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		log.Error().Err(err).Msg("crear factura: insert rechazado")
		return nil, fmt.Errorf("crear factura: %w", err)
	}

	uc.invalidateList(ctx)
	return nil, nil
}

// Update valida el formulario y actualiza customer_id, amount y status de la
// factura id. La fecha es inmutable: nunca se toca después de la creación.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceFormInput) (*FormErrors, error) {
	form, errs := ParseInvoiceForm(in)
	if !errs.Ok() {
		log.Warn().Str("invoice_id", id).Interface("errors", errs.Fields).Msg("actualizar factura: validación fallida")
		return errs, nil
	}

	invoice := &entity.Invoice{
		ID:         id,
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     form.Status,
	}
	if err := uc.invoices.Update(ctx, invoice); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("actualizar factura: update rechazado")
		return nil, fmt.Errorf("actualizar factura %s: %w", id, err)
	}

	uc.invalidateList(ctx)
	return nil, nil
}

// Delete elimina la factura id. A diferencia de Create/Update, un fallo del
// backend (incluido id inexistente) es fatal para el llamador. En éxito solo
// invalida la vista; no hay redirección porque el delete se dispara desde el
// propio listado.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.invoices.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("eliminar factura: delete rechazado")
		return fmt.Errorf("eliminar factura %s: %w", id, err)
	}
	uc.invalidateList(ctx)
	return nil
}

// GetByID devuelve la factura o nil si no existe o el backend falla (degrada con log).
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) *dto.InvoiceResponse {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("invoice_id", id).Msg("consultar factura por id")
		return nil
	}
	if invoice == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     invoice.Amount,
		Date:       invoice.Date,
		Status:     invoice.Status,
	}
}

// ListFiltered devuelve la página `page` (tamaño 10) de facturas cuyo cliente
// coincide por nombre O email con query (substring, case-insensitive), en
// orden de fecha descendente. Degrada a lista vacía con log si el backend falla.
func (uc *InvoiceUseCase) ListFiltered(ctx context.Context, query string, page int) []dto.InvoiceListItem {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	rows, err := uc.invoices.ListFiltered(ctx, query, pageSize, offset)
	if err != nil {
		log.Error().Err(err).Str("query", query).Int("page", page).Msg("listar facturas filtradas")
		return []dto.InvoiceListItem{}
	}

	items := make([]dto.InvoiceListItem, 0, len(rows))
	for _, row := range rows {
		name, email, image := resolveCustomer(row)
		items = append(items, dto.InvoiceListItem{
			ID:       row.Invoice.ID,
			Name:     name,
			Email:    email,
			ImageURL: image,
			Amount:   currency.FormatCents(row.Invoice.Amount),
			Date:     row.Invoice.Date,
			Status:   row.Invoice.Status,
		})
	}
	return items
}

// CountPages devuelve max(1, ceil(n/10)) donde n cuenta las facturas que
// coinciden con el MISMO filtro del listado. Degrada a 1 con log si el backend
// falla.
func (uc *InvoiceUseCase) CountPages(ctx context.Context, query string) int {
	total, err := uc.invoices.CountFiltered(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("contar páginas de facturas")
		return 1
	}
	pages := int((total + pageSize - 1) / pageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}

// invalidateList descarta la vista cacheada del listado. Un fallo aquí se
// registra pero no altera el resultado de la escritura.
func (uc *InvoiceUseCase) invalidateList(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx, InvoiceListPath); err != nil {
		log.Warn().Err(err).Str("path", InvoiceListPath).Msg("invalidar caché de vista")
	}
}

// resolveCustomer aplica los valores de fallback cuando el join no resolvió
// cliente o cuando image_url viene vacío.
func resolveCustomer(row repository.InvoiceWithCustomer) (name, email, image string) {
	name, email, image = row.CustomerName, row.CustomerEmail, row.CustomerImage
	if !row.HasCustomer {
		name, email = "Unknown", "No email"
	}
	if image == "" {
		image = entity.FallbackAvatar
	}
	return name, email, image
}
