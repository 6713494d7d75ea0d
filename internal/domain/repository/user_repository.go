package repository

import (
	"context"

	"github.com/jhoicas/juguetes-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create inserta y completa user.ID. Devuelve domain.ErrUsernameTaken si el username existe;
	// en ese caso no se escribe nada.
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername devuelve (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
