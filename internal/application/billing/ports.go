package billing

import "context"

// InvoiceListPath ruta lógica de la vista del listado de facturas. Es la única
// vista cacheada que este servicio invalida tras una escritura.
const InvoiceListPath = "/dashboard/invoices"

// ViewCache puerto hacia el caché de vistas renderizadas de la capa de
// presentación. Invalidate descarta la vista cacheada bajo path; un fallo de
// invalidación nunca debe hacer fallar la escritura que la originó.
type ViewCache interface {
	Invalidate(ctx context.Context, path string) error
}
