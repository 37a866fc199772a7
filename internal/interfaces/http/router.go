package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jstringer1212/plant-review-api/internal/application/auth"
	"github.com/jstringer1212/plant-review-api/internal/application/export"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	PlantUC    *usecase.PlantUseCase
	ReviewUC   *usecase.ReviewUseCase
	CommentUC  *usecase.CommentUseCase
	FavoriteUC *usecase.FavoriteUseCase
	CatalogUC  *export.CatalogUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/auth/protect", authHandler.Protect)

	// Users: lectura pública, rol y estado solo-admin
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", authRequired, adminOnly, userHandler.UpdateRole)
	users.Put("/:id/status", authRequired, adminOnly, userHandler.UpdateStatus)

	// Plants: lectura pública, mutación solo-admin
	plantHandler := NewPlantHandler(deps.PlantUC, deps.CatalogUC)
	plants := api.Group("/plants")
	plants.Get("/", plantHandler.List)
	plants.Get("/export/pdf", authRequired, adminOnly, plantHandler.ExportPDF)
	plants.Get("/:id", plantHandler.GetByID)
	plants.Post("/", authRequired, adminOnly, plantHandler.Create)
	plants.Put("/:id", authRequired, adminOnly, plantHandler.Update)
	plants.Delete("/:id", authRequired, adminOnly, plantHandler.Delete)

	// Reviews: lectura pública, mutación autenticada (propietario-o-admin en el usecase)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews := api.Group("/reviews")
	reviews.Get("/", reviewHandler.List)
	reviews.Get("/:id", reviewHandler.GetByID)
	reviews.Post("/", authRequired, reviewHandler.Create)
	reviews.Put("/:id", authRequired, reviewHandler.Update)
	reviews.Delete("/:id", authRequired, reviewHandler.Delete)

	// Comments: mismo esquema que reviews
	commentHandler := NewCommentHandler(deps.CommentUC)
	comments := api.Group("/comments")
	comments.Get("/", commentHandler.List)
	comments.Get("/:id", commentHandler.GetByID)
	comments.Post("/", authRequired, commentHandler.Create)
	comments.Put("/:id", authRequired, commentHandler.Update)
	comments.Delete("/:id", authRequired, commentHandler.Delete)

	// Favorites: siempre autenticado; la identidad sale del token
	favoriteHandler := NewFavoriteHandler(deps.FavoriteUC)
	favorites := api.Group("/favorites", authRequired)
	favorites.Get("/", favoriteHandler.List)
	favorites.Post("/", favoriteHandler.Toggle)
	favorites.Delete("/", favoriteHandler.Remove)
}
