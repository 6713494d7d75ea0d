package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/juguetes-api/docs"
	"github.com/jhoicas/juguetes-api/internal/application/auth"
	"github.com/jhoicas/juguetes-api/internal/application/usecase"
	"github.com/jhoicas/juguetes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/juguetes-api/internal/interfaces/http"
	"github.com/jhoicas/juguetes-api/pkg/config"
	"github.com/jhoicas/juguetes-api/pkg/logger"
	"github.com/jhoicas/juguetes-api/pkg/password"
)

// @title                       Juguetes API
// @version                     1.0
// @description                 Inventario de juguetes: autenticación JWT y catálogo.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	toyRepo := postgres.NewToyRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, password.New(password.DefaultCost), auth.Config{
		JWT: auth.JWTConfig{
			Secret: cfg.JWT.Secret,
			TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
			Issuer: cfg.JWT.Issuer,
		},
		SkipDuplicateUsername: cfg.Auth.DuplicateUsername == config.DuplicateSkip,
	})
	toyUC := usecase.NewToyUseCase(toyRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, materialRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Juguetes API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ToyUC:       toyUC,
		CatalogUC:   catalogUC,
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      log,
		Metrics:     httpRouter.NewMetrics(true),
		DB:          pool,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
