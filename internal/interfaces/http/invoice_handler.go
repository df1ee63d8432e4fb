package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-dashboard/internal/application/billing"
	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
	"github.com/tu-usuario/facturas-dashboard/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
//
// Las escrituras reproducen el ciclo del formulario: en éxito Create y Update
// emiten exactamente una redirección 303 al listado de facturas; Delete no
// redirige porque se dispara desde el propio listado.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create POST /api/invoices (form data)
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceFormInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	errs, err := h.uc.Create(c.Context(), in)
	if !errs.Ok() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: errs.Fields})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect(billing.InvoiceListPath, fiber.StatusSeeOther)
}

// Update POST /api/invoices/:id (form data)
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.InvoiceFormInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	errs, err := h.uc.Update(c.Context(), id, in)
	if !errs.Ok() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: errs.Fields})
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect(billing.InvoiceListPath, fiber.StatusSeeOther)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice := h.uc.GetByID(c.Context(), c.Params("id"))
	if invoice == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(invoice)
}

// List GET /api/invoices?query=&page=1
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	query := c.Query("query", "")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	return c.JSON(h.uc.ListFiltered(c.Context(), query, page))
}

// Pages GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *fiber.Ctx) error {
	query := c.Query("query", "")
	return c.JSON(dto.PagesResponse{Pages: h.uc.CountPages(c.Context(), query)})
}
