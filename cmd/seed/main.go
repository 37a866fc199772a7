// seed limpia la base y la puebla con datos de muestra: usuarios (passwords
// hasheados con bcrypt), plantas, reseñas, comentarios y favoritos.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/infrastructure/postgres"
	"github.com/jstringer1212/plant-review-api/pkg/config"
	"github.com/jstringer1212/plant-review-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	// Limpiar en orden de dependencias
	for _, table := range []string{"comments", "reviews", "favorites", "plants", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpiar tabla")
		}
	}
	log.Info().Msg("base de datos limpiada")

	userRepo := postgres.NewUserRepository(pool)
	plantRepo := postgres.NewPlantRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	favRepo := postgres.NewFavoriteRepository(pool)

	now := time.Now()

	newUser := func(first, last, email, password, role string) *entity.User {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		return &entity.User{
			ID:           uuid.New().String(),
			FirstName:    first,
			LastName:     last,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	admin := newUser("Ada", "Vergara", "admin@example.com", "admin12345", entity.RoleAdmin)
	john := newUser("John", "Doe", "john.doe@example.com", "password123", entity.RoleUser)
	jane := newUser("Jane", "Doe", "jane.doe@example.com", "password123", entity.RoleUser)
	for _, u := range []*entity.User{admin, john, jane} {
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}
	log.Info().Int("count", 3).Str("lead_admin_id", admin.ID).Msg("usuarios creados")

	newPlant := func(cName, sName, genus, species, care, pColor, sColor string) *entity.Plant {
		return &entity.Plant{
			ID:        uuid.New().String(),
			CName:     cName,
			SName:     sName,
			Genus:     genus,
			Species:   species,
			Care:      care,
			PColor:    pColor,
			SColor:    sColor,
			ImageURL:  "",
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	monstera := newPlant("Monstera", "Monstera deliciosa", "Monstera", "deliciosa",
		"Luz indirecta brillante, riego cuando los primeros centímetros del sustrato estén secos.", "green", "white")
	potus := newPlant("Potus", "Epipremnum aureum", "Epipremnum", "aureum",
		"Tolera poca luz, riego moderado. Muy resistente.", "green", "yellow")
	lengua := newPlant("Lengua de suegra", "Dracaena trifasciata", "Dracaena", "trifasciata",
		"Riego escaso, tolera sombra y sol directo.", "green", "yellow")
	for _, p := range []*entity.Plant{monstera, potus, lengua} {
		if err := plantRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("cName", p.CName).Msg("crear planta")
		}
	}
	log.Info().Int("count", 3).Msg("plantas creadas")

	review := &entity.Review{
		ID:        uuid.New().String(),
		PlantID:   monstera.ID,
		UserID:    john.ID,
		Rating:    5,
		Content:   "Crece rapidísimo y es muy fácil de cuidar.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := reviewRepo.Create(review); err != nil {
		log.Fatal().Err(err).Msg("crear reseña")
	}

	comment := &entity.Comment{
		ID:        uuid.New().String(),
		ReviewID:  review.ID,
		UserID:    jane.ID,
		Content:   "Coincido, la mía también.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := commentRepo.Create(comment); err != nil {
		log.Fatal().Err(err).Msg("crear comentario")
	}

	fav := &entity.Favorite{
		ID:        uuid.New().String(),
		UserID:    jane.ID,
		PlantID:   monstera.ID,
		CreatedAt: now,
	}
	if err := favRepo.Add(fav); err != nil {
		log.Fatal().Err(err).Msg("crear favorito")
	}

	log.Info().Msg("seed completado")
}
