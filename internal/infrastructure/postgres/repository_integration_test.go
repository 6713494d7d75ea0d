//go:build integration

package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/juguetes-api/pkg/config"
)

// setupDB levanta un PostgreSQL desechable, aplica las migraciones y devuelve el pool.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		t.Skip("Docker no disponible, se omiten los tests de integración")
	}
	_ = provider.Close()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("juguetes_test"),
		tcpostgres.WithUsername("juguetes"),
		tcpostgres.WithPassword("juguetes"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("no se pudo iniciar PostgreSQL: %v", err)
	}
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = ctr.Terminate(cleanupCtx)
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, postgres.MigrateUp(dsn))
	require.NoError(t, postgres.MigrateUp(dsn), "segunda ejecución sin cambios no es error")

	version, dirty, err := postgres.MigrationVersion(dsn)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestIntegration_Repositorios(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	t.Run("usuarios", func(t *testing.T) {
		users := postgres.NewUserRepository(pool)

		u := &entity.User{Username: "ana", PasswordHash: "$2a$10$hash", Name: "Ana", Role: entity.RoleVendedor}
		require.NoError(t, users.Create(ctx, u))
		assert.NotZero(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())

		dup := &entity.User{Username: "ana", PasswordHash: "otro", Name: "Otra", Role: entity.RoleAdministrador}
		assert.ErrorIs(t, users.Create(ctx, dup), domain.ErrUsernameTaken)

		found, err := users.FindByUsername(ctx, "ana")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID, found.ID)
		assert.Equal(t, "Ana", found.Name, "el duplicado no sobrescribe")
		assert.Equal(t, "$2a$10$hash", found.PasswordHash)

		missing, err := users.FindByUsername(ctx, "nadie")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("catalogo y juguetes", func(t *testing.T) {
		cats := postgres.NewCategoryRepository(pool)
		mats := postgres.NewMaterialRepository(pool)
		toys := postgres.NewToyRepository(pool)

		cat := &entity.Category{Name: "Peluches"}
		require.NoError(t, cats.Create(ctx, cat))
		assert.ErrorIs(t, cats.Create(ctx, &entity.Category{Name: "Peluches"}), domain.ErrDuplicate)

		mat := &entity.Material{Name: "Tela"}
		require.NoError(t, mats.Create(ctx, mat))
		assert.ErrorIs(t, mats.Create(ctx, &entity.Material{Name: "Tela"}), domain.ErrDuplicate)

		created, err := toys.Create(ctx, &entity.Toy{Name: "Osito", CategoryID: &cat.ID, MaterialID: &mat.ID, Stock: 3})
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^JUG-\d+$`), created.ID)
		assert.Equal(t, "Peluches", created.CategoryName)
		assert.Equal(t, "Tela", created.MaterialName)

		bad := int64(9999)
		_, err = toys.Create(ctx, &entity.Toy{Name: "Fantasma", CategoryID: &bad})
		assert.ErrorIs(t, err, domain.ErrInvalidReference)

		for i := 0; i < 10; i++ {
			_, err := toys.Create(ctx, &entity.Toy{Name: "Pelota"})
			require.NoError(t, err)
		}
		list, err := toys.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 11)
		assert.Equal(t, created.ID, list[0].ID, "orden numérico: JUG-1 primero")
		assert.Empty(t, list[10].CategoryName)
		assert.Nil(t, list[10].CategoryID)

		updated, err := toys.Update(ctx, created.ID, &entity.Toy{Name: "Osito grande"}, nil)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 3, updated.Stock, "stock nil conserva el valor")
		assert.Nil(t, updated.CategoryID)

		stock := 7
		updated, err = toys.Update(ctx, created.ID, &entity.Toy{Name: "Osito grande", MaterialID: &mat.ID}, &stock)
		require.NoError(t, err)
		assert.Equal(t, 7, updated.Stock)
		assert.Equal(t, "Tela", updated.MaterialName)

		missing, err := toys.Update(ctx, "JUG-0", &entity.Toy{Name: "X"}, nil)
		require.NoError(t, err)
		assert.Nil(t, missing)

		ok, err := toys.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = toys.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("migrate down", func(t *testing.T) {
		// Se ejecuta al final: deja la base sin tablas.
		dsn := pool.Config().ConnString()
		require.NoError(t, postgres.MigrateDown(dsn, 1))
		version, _, err := postgres.MigrationVersion(dsn)
		require.NoError(t, err)
		assert.Zero(t, version)
	})
}
