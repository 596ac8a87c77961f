package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	VariationUC    *usecase.VariationUseCase
	Images         *storage.ImageStore
	JWTSecret      string
	MaxUploadBytes int64
}

// Carpetas de destino del pipeline de imágenes por tipo de recurso.
const (
	bannerFolder    = "banner"
	variationFolder = "variations"
)

// Router registra las rutas de la API. Las lecturas del catálogo son
// públicas; las mutaciones requieren Bearer Token y rol de staff.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.JWTSecret)
	staff := RequireRole(entity.RoleAdmin, entity.RoleDealer)
	bannerUpload := UploadImage(deps.Images, bannerFolder, deps.MaxUploadBytes)
	variationUpload := UploadImage(deps.Images, variationFolder, deps.MaxUploadBytes)

	// Users (registro y login públicos; el resto requiere token)
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	app.Post("/users", userHandler.Register)
	app.Post("/users/auth", userHandler.Auth)
	users := app.Group("/users", authMW)
	users.Get("/", userHandler.Index)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", userHandler.Show)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/password", userHandler.UpdatePassword)
	users.Delete("/:id", userHandler.Delete)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := app.Group("/categories")
	categories.Get("/", categoryHandler.Index)
	categories.Get("/name/:name", categoryHandler.ShowByName)
	categories.Get("/:id", categoryHandler.Show)
	categories.Post("/", authMW, staff, categoryHandler.Store)
	categories.Put("/:id", authMW, staff, categoryHandler.Update)
	categories.Delete("/:id", authMW, staff, categoryHandler.Delete)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	variationHandler := NewVariationHandler(deps.VariationUC)
	products := app.Group("/products")
	products.Get("/", productHandler.Index)
	products.Get("/category/:categoryId", productHandler.ByCategory)
	products.Get("/:productId/variations", variationHandler.IndexByProduct)
	products.Get("/:id", productHandler.Show)
	products.Post("/", authMW, staff, bannerUpload, productHandler.Store)
	products.Post("/:productId/variations", authMW, staff, variationUpload, variationHandler.Store)
	products.Put("/:id", authMW, staff, bannerUpload, productHandler.Update)
	products.Patch("/:id/stock", authMW, staff, productHandler.UpdateStock)
	products.Delete("/:id", authMW, staff, productHandler.Delete)

	// Variations
	variations := app.Group("/variations")
	variations.Get("/:id", variationHandler.Show)
	variations.Put("/:id", authMW, staff, variationUpload, variationHandler.Update)
	variations.Delete("/:id", authMW, staff, variationHandler.Delete)
}
