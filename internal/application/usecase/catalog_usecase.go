package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/domain/repository"
)

// CatalogUseCase categorías y materiales referenciados por los juguetes.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	materials  repository.MaterialRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, materials repository.MaterialRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, materials: materials}
}

// ListCategories lista las categorías por ID.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Nombre: c.Name})
	}
	return out, nil
}

// CreateCategory crea una categoría. Nombre repetido -> domain.ErrDuplicate.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.NameRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{Name: name}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Nombre: c.Name}, nil
}

// ListMaterials lista los materiales por ID.
func (uc *CatalogUseCase) ListMaterials(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := uc.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MaterialResponse{ID: m.ID, Nombre: m.Name})
	}
	return out, nil
}

// CreateMaterial crea un material. Nombre repetido -> domain.ErrDuplicate.
func (uc *CatalogUseCase) CreateMaterial(ctx context.Context, in dto.NameRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Material{Name: name}
	if err := uc.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MaterialResponse{ID: m.ID, Nombre: m.Name}, nil
}
