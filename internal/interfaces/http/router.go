package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jhoicas/juguetes-api/internal/application/auth"
	"github.com/jhoicas/juguetes-api/internal/application/usecase"
	"github.com/jhoicas/juguetes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ToyUC       *usecase.ToyUseCase
	CatalogUC   *usecase.CatalogUseCase
	JWTSecret   string
	ServiceName string
	CORSOrigins []string
	Logger      *logger.Logger // opcional: sin logger no hay log de peticiones
	Metrics     *Metrics       // opcional: sin métricas no se expone /metrics
	DB          Pinger         // opcional: /health responde ok sin comprobar la base
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(deps.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Get("/health", Health(deps.ServiceName, deps.DB))

	api := app.Group("/api")
	requireToken := AuthMiddleware(deps.JWTSecret)

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireToken, authHandler.Me)

	// Juguetes (protegido)
	toys := api.Group("/juguetes", requireToken)
	toyHandler := NewToyHandler(deps.ToyUC)
	toys.Get("/", toyHandler.List)
	toys.Post("/", toyHandler.Create)
	toys.Put("/:id", toyHandler.Update)
	toys.Delete("/:id", toyHandler.Delete)

	// Catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := api.Group("/categorias", requireToken)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)

	materials := api.Group("/materiales", requireToken)
	materials.Get("/", catalogHandler.ListMaterials)
	materials.Post("/", catalogHandler.CreateMaterial)
}
