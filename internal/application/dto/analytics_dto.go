package dto

// RevenueResponse ingreso mensual para la gráfica del dashboard.
type RevenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// LatestInvoiceResponse factura reciente para el widget del dashboard.
// Amount va formateado como string de presentación (unidades mayores).
type LatestInvoiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// CardSummaryResponse tarjetas de resumen del dashboard.
// Los totales monetarios van como string de presentación; los conteos como enteros.
type CardSummaryResponse struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}
