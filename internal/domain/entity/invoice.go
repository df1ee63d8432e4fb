package entity

// Estados válidos de una factura.
const (
	StatusPending = "pending" // emitida, pago pendiente
	StatusPaid    = "paid"    // pagada
)

// Invoice representa una factura. Amount se almacena en centavos (unidades
// menores de la moneda); la conversión desde unidades mayores ocurre en la
// capa de validación, nunca aquí.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64  // centavos
	Date       string // YYYY-MM-DD, inmutable después de la creación
	Status     string // pending | paid
}

// ValidStatus indica si s es uno de los dos estados permitidos.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}
