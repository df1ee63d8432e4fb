package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
	"github.com/tu-usuario/facturas-dashboard/internal/application/seed"
)

// SeedHandler expone el disparador externo de la carga de fixtures.
type SeedHandler struct {
	uc *seed.UseCase
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *seed.UseCase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Run GET /api/seed
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	if err := h.uc.Run(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Database seeded successfully"})
}
