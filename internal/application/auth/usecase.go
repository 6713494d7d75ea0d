package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/domain/repository"
	"github.com/jhoicas/juguetes-api/pkg/jwt"
	"github.com/jhoicas/juguetes-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// Config configuración del caso de uso de auth.
type Config struct {
	JWT JWTConfig
	// SkipDuplicateUsername: registrar un username existente es un no-op exitoso en vez de ErrUsernameTaken.
	SkipDuplicateUsername bool
}

// PasswordHasher hashea y verifica contraseñas. Lo implementa *password.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	cfg      Config
}

// NewAuthUseCase construye el caso de uso de auth. Un TTL no positivo usa jwt.DefaultTTL.
func NewAuthUseCase(userRepo repository.UserRepository, hasher PasswordHasher, cfg Config) *AuthUseCase {
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = jwt.DefaultTTL
	}
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, cfg: cfg}
}

// RegisterUser hashea la contraseña y persiste el usuario con rol Vendedor por defecto.
// Con un username repetido devuelve domain.ErrUsernameTaken, o (nil, nil) si la política es skip.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.LoginName())
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return nil, err
	}
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		name = username
	}
	role := strings.TrimSpace(in.Rol)
	if role == "" {
		role = entity.RoleVendedor
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) && uc.cfg.SkipDuplicateUsername {
			return nil, nil
		}
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username, Rol: user.Role}, nil
}

// Login verifica username/password y emite el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.cfg.JWT.Secret, user.ID, user.Role, uc.cfg.JWT.Issuer, uc.cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.SessionUser{
			ID:     user.ID,
			Nombre: user.Name,
			Rol:    user.Role,
		},
	}, nil
}
