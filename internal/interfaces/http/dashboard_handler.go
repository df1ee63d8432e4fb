package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-dashboard/internal/application/analytics"
	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
)

// DashboardHandler expone las lecturas del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Revenue GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	revenue, err := h.uc.Revenue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(revenue)
}

// LatestInvoices GET /api/dashboard/latest-invoices
func (h *DashboardHandler) LatestInvoices(c *fiber.Ctx) error {
	return c.JSON(h.uc.LatestInvoices(c.Context()))
}

// Cards GET /api/dashboard/cards
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	cards, err := h.uc.CardSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cards)
}
