package auth

import (
	"context"

	"github.com/tu-usuario/facturas-dashboard/internal/application/dto"
	"github.com/tu-usuario/facturas-dashboard/internal/domain"
	"github.com/tu-usuario/facturas-dashboard/internal/domain/repository"
	"github.com/tu-usuario/facturas-dashboard/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación: login de usuarios del dashboard.
// Los usuarios se crean únicamente por la rutina de seed.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt almacenado, genera JWT
// y retorna token + usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
