package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
	"github.com/jstringer1212/plant-review-api/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implementación del puerto PlantRepository sobre PostgreSQL.
type PlantRepo struct {
	db dbtx
}

// NewPlantRepository construye el adaptador de persistencia para plantas.
func NewPlantRepository(db dbtx) *PlantRepo {
	return &PlantRepo{db: db}
}

// mapPlantUniqueViolation traduce la violación de unicidad al campo que chocó.
func mapPlantUniqueViolation(err error) error {
	switch constraintName(err) {
	case "plants_c_name_key":
		return domain.ErrCommonNameTaken
	case "plants_s_name_key":
		return domain.ErrScientificNameTaken
	default:
		return domain.ErrDuplicate
	}
}

// Create persiste una nueva planta.
func (r *PlantRepo) Create(plant *entity.Plant) error {
	query := `
		INSERT INTO plants (id, c_name, s_name, genus, species, care, p_color, s_color, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		plant.ID, plant.CName, plant.SName, plant.Genus, plant.Species,
		plant.Care, plant.PColor, plant.SColor, plant.ImageURL,
		plant.CreatedAt, plant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapPlantUniqueViolation(err)
		}
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

// GetByID obtiene una planta por ID. Devuelve nil, nil si no existe.
func (r *PlantRepo) GetByID(id string) (*entity.Plant, error) {
	query := `
		SELECT id, c_name, s_name, genus, species, care, p_color, s_color, image_url, created_at, updated_at
		FROM plants WHERE id = $1`
	var p entity.Plant
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CName, &p.SName, &p.Genus, &p.Species, &p.Care,
		&p.PColor, &p.SColor, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant by id: %w", err)
	}
	return &p, nil
}

// GetByIDWithRating obtiene una planta junto con su calificación promedio.
func (r *PlantRepo) GetByIDWithRating(id string) (*repository.PlantWithRating, error) {
	query := `
		SELECT p.id, p.c_name, p.s_name, p.genus, p.species, p.care, p.p_color, p.s_color,
			p.image_url, p.created_at, p.updated_at,
			COALESCE(AVG(r.rating), 0)::numeric(3,2) AS avg_rating,
			COUNT(r.id) AS review_count
		FROM plants p
		LEFT JOIN reviews r ON r.plant_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`
	pw, err := scanPlantWithRating(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant with rating: %w", err)
	}
	return pw, nil
}

// Update actualiza una planta.
func (r *PlantRepo) Update(plant *entity.Plant) error {
	query := `
		UPDATE plants SET c_name = $2, s_name = $3, genus = $4, species = $5, care = $6,
			p_color = $7, s_color = $8, image_url = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		plant.ID, plant.CName, plant.SName, plant.Genus, plant.Species,
		plant.Care, plant.PColor, plant.SColor, plant.ImageURL, plant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return mapPlantUniqueViolation(err)
		}
		return fmt.Errorf("update plant: %w", err)
	}
	return nil
}

// List lista el catálogo con calificación promedio, ordenado por nombre común.
func (r *PlantRepo) List(limit, offset int) ([]*repository.PlantWithRating, error) {
	query := `
		SELECT p.id, p.c_name, p.s_name, p.genus, p.species, p.care, p.p_color, p.s_color,
			p.image_url, p.created_at, p.updated_at,
			COALESCE(AVG(r.rating), 0)::numeric(3,2) AS avg_rating,
			COUNT(r.id) AS review_count
		FROM plants p
		LEFT JOIN reviews r ON r.plant_id = p.id
		GROUP BY p.id
		ORDER BY p.c_name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()
	var list []*repository.PlantWithRating
	for rows.Next() {
		pw, err := scanPlantWithRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, pw)
	}
	return list, rows.Err()
}

// Delete elimina una planta por ID. Reseñas, comentarios y favoritos caen por cascade.
func (r *PlantRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}
	return nil
}

func scanPlantWithRating(row pgx.Row) (*repository.PlantWithRating, error) {
	var (
		p     entity.Plant
		avg   decimal.Decimal
		count int
	)
	err := row.Scan(
		&p.ID, &p.CName, &p.SName, &p.Genus, &p.Species, &p.Care,
		&p.PColor, &p.SColor, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		&avg, &count,
	)
	if err != nil {
		return nil, err
	}
	return &repository.PlantWithRating{Plant: &p, AvgRating: avg, ReviewCount: count}, nil
}
