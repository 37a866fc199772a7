package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jstringer1212/plant-review-api/internal/application/auth"
	"github.com/jstringer1212/plant-review-api/internal/application/export"
	"github.com/jstringer1212/plant-review-api/internal/application/usecase"
	"github.com/jstringer1212/plant-review-api/internal/domain/authz"
	infrapdf "github.com/jstringer1212/plant-review-api/internal/infrastructure/pdf"
	"github.com/jstringer1212/plant-review-api/internal/infrastructure/postgres"
	httpRouter "github.com/jstringer1212/plant-review-api/internal/interfaces/http"
	"github.com/jstringer1212/plant-review-api/pkg/config"
	"github.com/jstringer1212/plant-review-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	userRepo := postgres.NewUserRepository(pool)
	plantRepo := postgres.NewPlantRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	guard := authz.NewGuard(cfg.Admin.LeadAdminID)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, guard)
	plantUC := usecase.NewPlantUseCase(plantRepo, guard)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, plantRepo, guard, txRunner)
	commentUC := usecase.NewCommentUseCase(commentRepo, reviewRepo, guard)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, plantRepo)

	// PDF: reporte del catálogo para el dashboard de administración
	catalogUC := export.NewCatalogUseCase(plantRepo, infrapdf.NewMarotoCatalogGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Plant Review API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		PlantUC:    plantUC,
		ReviewUC:   reviewUC,
		CommentUC:  commentUC,
		FavoriteUC: favoriteUC,
		CatalogUC:  catalogUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

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
