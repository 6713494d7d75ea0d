package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/juguetes-api/internal/application/dto"
	"github.com/jhoicas/juguetes-api/internal/application/usecase"
	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/testutil/memrepo"
)

func TestCatalog_CategoriasYMateriales(t *testing.T) {
	store := memrepo.New()
	uc := seedCatalog(t, store)

	_, err := uc.CreateCategory(context.Background(), dto.NameRequest{Nombre: "Didácticos"})
	require.NoError(t, err)

	cats, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryResponse{{ID: 1, Nombre: "Peluches"}, {ID: 2, Nombre: "Didácticos"}}, cats)

	mats, err := uc.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.MaterialResponse{{ID: 1, Nombre: "Tela"}}, mats)
}

func TestCatalog_NombreDuplicado(t *testing.T) {
	uc := seedCatalog(t, memrepo.New())

	_, err := uc.CreateCategory(context.Background(), dto.NameRequest{Nombre: "Peluches"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateMaterial(context.Background(), dto.NameRequest{Nombre: "Tela"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCatalog_NombreVacio(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memrepo.New().Categories(), memrepo.New().Materials())

	_, err := uc.CreateCategory(context.Background(), dto.NameRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateMaterial(context.Background(), dto.NameRequest{Nombre: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_ListasVaciasNoSonNil(t *testing.T) {
	uc := usecase.NewCatalogUseCase(memrepo.New().Categories(), memrepo.New().Materials())

	cats, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cats)
	assert.Empty(t, cats)
}
