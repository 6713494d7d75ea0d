// migrate aplica o revierte las migraciones embebidas en el binario.
//
// Uso: go run ./cmd/migrate [up|down [n]|version]
// Sin argumentos aplica todas las pendientes (up). down revierte n pasos (1 por defecto).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/juguetes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/juguetes-api/pkg/config"
	"github.com/jhoicas/juguetes-api/pkg/logger"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	dsn := cfg.DB.ConnectionString()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := postgres.MigrateUp(dsn); err != nil {
			log.Fatal().Err(err).Msg("migrate up")
		}
		log.Info().Msg("migraciones aplicadas")
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Pasos inválidos: %q\n", os.Args[2])
				os.Exit(2)
			}
			steps = n
		}
		if err := postgres.MigrateDown(dsn, steps); err != nil {
			log.Fatal().Err(err).Int("steps", steps).Msg("migrate down")
		}
		log.Info().Int("steps", steps).Msg("migraciones revertidas")
	case "version":
		version, dirty, err := postgres.MigrationVersion(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("migrate version")
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
	default:
		fmt.Fprintf(os.Stderr, "Uso: migrate [up|down [n]|version]\n")
		os.Exit(2)
	}
}
