package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

// CustomerUseCase lecturas sobre clientes. Los clientes solo se crean vía seed,
// así que no hay escrituras aquí.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List devuelve todos los clientes, sustituyendo la imagen de fallback cuando
// image_url es nulo. Propaga el error del backend (sin fallback silencioso).
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		image := c.ImageURL
		if image == "" {
			image = entity.FallbackAvatar
		}
		out = append(out, dto.CustomerResponse{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: image,
		})
	}
	return out, nil
}
