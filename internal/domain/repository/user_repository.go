package repository

import (
	"context"

	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// EnsureSeedProcedure invoca el procedimiento seed_users() del backend
	// antes de la fase de usuarios del seed. Su valor de retorno se ignora.
	EnsureSeedProcedure(ctx context.Context) error
}
