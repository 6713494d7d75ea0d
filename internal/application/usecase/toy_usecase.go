package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/domain/repository"
)

// ToyUseCase casos de uso CRUD para juguetes.
type ToyUseCase struct {
	repo repository.ToyRepository
}

// NewToyUseCase construye el caso de uso.
func NewToyUseCase(repo repository.ToyRepository) *ToyUseCase {
	return &ToyUseCase{repo: repo}
}

// List devuelve todos los juguetes ordenados por ID.
func (uc *ToyUseCase) List(ctx context.Context) ([]dto.ToyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ToyResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toToyResponse(t))
	}
	return out, nil
}

// Create crea un juguete. El ID lo asigna el repositorio (JUG-<n>); el stock inicia en 0 si no viene.
func (uc *ToyUseCase) Create(ctx context.Context, in dto.ToyRequest) (*dto.ToyResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	stock := 0
	if in.Stock != nil {
		stock = int(*in.Stock)
	}
	created, err := uc.repo.Create(ctx, &entity.Toy{
		Name:       name,
		CategoryID: in.Categoria.Int64(),
		MaterialID: in.Material.Int64(),
		Stock:      stock,
	})
	if err != nil {
		return nil, err
	}
	out := toToyResponse(created)
	return &out, nil
}

// Update reemplaza nombre, categoría y material; el stock se conserva si no viene.
// Devuelve domain.ErrNotFound si el juguete no existe.
func (uc *ToyUseCase) Update(ctx context.Context, id string, in dto.ToyRequest) (*dto.ToyResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if id == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.Update(ctx, id, &entity.Toy{
		Name:       name,
		CategoryID: in.Categoria.Int64(),
		MaterialID: in.Material.Int64(),
	}, in.Stock.Int())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	out := toToyResponse(updated)
	return &out, nil
}

// Delete elimina un juguete. Devuelve domain.ErrNotFound si no existía.
func (uc *ToyUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toToyResponse(t *entity.Toy) dto.ToyResponse {
	return dto.ToyResponse{
		ID:          t.ID,
		Nombre:      t.Name,
		IDCategoria: t.CategoryID,
		Categoria:   optionalName(t.CategoryName),
		IDMaterial:  t.MaterialID,
		Material:    optionalName(t.MaterialName),
		Stock:       t.Stock,
	}
}

// optionalName traduce el nombre vacío de un LEFT JOIN a null en JSON.
func optionalName(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
