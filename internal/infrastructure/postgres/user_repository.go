package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturas-dashboard/internal/domain"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/entity"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario (con la contraseña ya hasheada).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM users WHERE email = $1 LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// EnsureSeedProcedure invoca el procedimiento seed_users() del backend.
// Su valor de retorno no se consume.
func (r *UserRepo) EnsureSeedProcedure(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `SELECT seed_users()`); err != nil {
		return fmt.Errorf("seed_users(): %w", err)
	}
	return nil
}
