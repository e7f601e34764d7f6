package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
)

// gormReader implements the list / get-by-id pair shared by every catalog entity
type gormReader[T any] struct {
	db       *gorm.DB
	name     string
	orderBy  string
	preloads []string
}

func (r *gormReader[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// ListAll retrieves every row ordered by primary key
func (r *gormReader[T]) ListAll(ctx context.Context) ([]T, error) {
	rows := []T{}
	if err := r.query(ctx).Order(r.orderBy).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}
	return rows, nil
}

// GetByID retrieves a single row by primary key
func (r *gormReader[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.query(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get %s by ID %d: %w", r.name, id, err)
	}
	return &row, nil
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormReader[models.User]{db: db, name: "users", orderBy: "id ASC"}
}

func NewGormPersonRepository(db *gorm.DB) PersonRepository {
	return &gormReader[models.Person]{
		db:       db,
		name:     "people",
		orderBy:  "character_id ASC",
		preloads: []string{"Gender", "Specie", "Vehicle", "Film"},
	}
}

func NewGormPlanetRepository(db *gorm.DB) PlanetRepository {
	return &gormReader[models.Planet]{db: db, name: "planets", orderBy: "planet_id ASC"}
}

func NewGormFilmRepository(db *gorm.DB) FilmRepository {
	return &gormReader[models.Film]{db: db, name: "films", orderBy: "film_id ASC"}
}

func NewGormStarshipRepository(db *gorm.DB) StarshipRepository {
	return &gormReader[models.Starship]{db: db, name: "starships", orderBy: "starship_id ASC", preloads: []string{"Pilot"}}
}

func NewGormVehicleRepository(db *gorm.DB) VehicleRepository {
	return &gormReader[models.Vehicle]{db: db, name: "vehicles", orderBy: "vehicle_id ASC"}
}

func NewGormGenderRepository(db *gorm.DB) GenderRepository {
	return &gormReader[models.Gender]{db: db, name: "genders", orderBy: "gender_id ASC"}
}

func NewGormSpecieRepository(db *gorm.DB) SpecieRepository {
	return &gormReader[models.Specie]{db: db, name: "species", orderBy: "specie_id ASC"}
}

func NewGormDirectorRepository(db *gorm.DB) DirectorRepository {
	return &gormReader[models.Director]{db: db, name: "directors", orderBy: "directo_id ASC"}
}
