package auth

import (
	"errors"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
	"github.com/tu-usuario/dashboard-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación del panel: login con email y
// contraseña contra la colección de usuarios.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Credenciales malas devuelven ErrUnauthorized sin distinguir si el email
// existe; un usuario inactivo devuelve ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, strconv.FormatInt(user.ID, 10), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			Status:      user.Status,
			CreatedAt:   user.CreatedAt.Format(dto.DateLayout),
			TotalOrders: user.TotalOrders,
			TotalSpent:  user.TotalSpent,
		},
	}, nil
}
