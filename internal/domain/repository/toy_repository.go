package repository

import (
	"context"

	"github.com/jhoicas/juguetes-api/internal/domain/entity"
)

// ToyRepository define el puerto de persistencia para Toy.
type ToyRepository interface {
	List(ctx context.Context) ([]*entity.Toy, error)
	// Create asigna el ID (JUG-<n>) y devuelve la fila con nombres de categoría y material.
	Create(ctx context.Context, toy *entity.Toy) (*entity.Toy, error)
	// Update devuelve (nil, nil) si el ID no existe. Un Stock nil conserva el actual.
	Update(ctx context.Context, id string, toy *entity.Toy, stock *int) (*entity.Toy, error)
	// Delete devuelve false si no había fila con ese ID.
	Delete(ctx context.Context, id string) (bool, error)
}
