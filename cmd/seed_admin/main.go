// seed_admin crea el usuario administrador inicial.
//
// Uso: ADMIN_PASSWORD=... go run ./cmd/seed_admin
// Lee ADMIN_USERNAME (admin), ADMIN_PASSWORD (obligatorio) y ADMIN_NAME de la configuración.
// Si el usuario ya existe no hace nada.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/juguetes-api/internal/domain"
	"github.com/jhoicas/juguetes-api/internal/domain/entity"
	"github.com/jhoicas/juguetes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/juguetes-api/pkg/config"
	"github.com/jhoicas/juguetes-api/pkg/password"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Admin.Password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_PASSWORD es obligatorio")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := password.New(password.DefaultCost).Hash(cfg.Admin.Password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	admin := &entity.User{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
		Name:         cfg.Admin.Name,
		Role:         entity.RoleAdministrador,
	}
	err = postgres.NewUserRepository(pool).Create(ctx, admin)
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		fmt.Printf("El usuario %q ya existe, no se modificó.\n", cfg.Admin.Username)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("Administrador %q creado (id %d).\n", admin.Username, admin.ID)
	}
}
