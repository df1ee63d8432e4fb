package dto

// InvoiceFormInput campos crudos del formulario de factura, tal como llegan
// del POST (form data). Amount viaja en unidades mayores ("49.99") y se
// convierte a centavos en la validación.
type InvoiceFormInput struct {
	CustomerID string `form:"customerId" json:"customerId"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// InvoiceResponse factura en respuestas (GET /api/invoices/:id).
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"` // centavos
	Date       string `json:"date"`   // YYYY-MM-DD
	Status     string `json:"status"`
}

// InvoiceListItem fila del listado paginado de facturas, con los campos del
// cliente ya resueltos (o sus valores de fallback).
type InvoiceListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"` // formateado para presentación
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// CustomerResponse cliente en respuestas (GET /api/customers).
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// PagesResponse total de páginas del listado filtrado.
type PagesResponse struct {
	Pages int `json:"pages"`
}
