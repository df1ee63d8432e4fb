// Package currency formatea montos almacenados en centavos para presentación.
package currency

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FormatCents convierte centavos a string en unidades mayores con dos
// decimales, ej. 4999 -> "49.99". Sin símbolo de moneda: eso lo decide la vista.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(hundred).StringFixed(2)
}
