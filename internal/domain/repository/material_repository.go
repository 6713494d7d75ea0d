package repository

import (
	"context"

	"github.com/jhoicas/juguetes-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material.
type MaterialRepository interface {
	List(ctx context.Context) ([]*entity.Material, error)
	Create(ctx context.Context, material *entity.Material) error
}
