package billing

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
)

// validate instancia compartida; es segura para uso concurrente.
var validate = validator.New()

// InvoiceForm registro tipado resultante de validar el formulario de factura.
// Amount ya está en centavos.
type InvoiceForm struct {
	CustomerID string `validate:"required"`
	Amount     int64  `validate:"min=0"`
	Status     string `validate:"required,oneof=pending paid"`
}

// FormErrors errores de validación por campo. Nunca se lanza un panic: el
// llamador consulta Ok() y decide. La validación es todo-o-nada.
type FormErrors struct {
	Fields map[string][]string
}

// Ok indica si el formulario pasó la validación completa.
func (e *FormErrors) Ok() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *FormErrors) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// ParseInvoiceForm coerce y valida los campos crudos del formulario.
// Amount se interpreta en unidades mayores y se convierte a centavos con
// round(x*100) ANTES de validar la cota amount >= 0. customer_id se acepta
// como string opaco; la integridad referencial la garantiza la FK del backend.
func ParseInvoiceForm(in dto.InvoiceFormInput) (*InvoiceForm, *FormErrors) {
	errs := &FormErrors{}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil {
		errs.add("amount", "amount debe ser numérico")
		amount = 0
	}

	form := &InvoiceForm{
		CustomerID: strings.TrimSpace(in.CustomerID),
		Amount:     int64(math.Round(amount * 100)),
		Status:     in.Status,
	}

	if vErr := validate.Struct(form); vErr != nil {
		if fieldErrs, ok := vErr.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				switch fe.Field() {
				case "CustomerID":
					errs.add("customerId", "customerId es requerido")
				case "Amount":
					errs.add("amount", "amount debe ser mayor o igual a 0")
				case "Status":
					errs.add("status", "status debe ser 'pending' o 'paid'")
				}
			}
		} else {
			errs.add("form", "formulario inválido")
		}
	}

	if !errs.Ok() {
		return nil, errs
	}
	return form, nil
}
