package repository

import (
	"context"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
)

// Read-only repositories. GetByID returns gorm.ErrRecordNotFound unwrapped when the
// row does not exist so handlers can map it to a 404.

// UserRepository defines the methods for user data operations
type UserRepository interface {
	ListAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// PersonRepository returns people with Gender, Specie, Vehicle and Film preloaded
type PersonRepository interface {
	ListAll(ctx context.Context) ([]models.Person, error)
	GetByID(ctx context.Context, id uint) (*models.Person, error)
}

type PlanetRepository interface {
	ListAll(ctx context.Context) ([]models.Planet, error)
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
}

type FilmRepository interface {
	ListAll(ctx context.Context) ([]models.Film, error)
	GetByID(ctx context.Context, id uint) (*models.Film, error)
}

// StarshipRepository returns starships with their Pilot preloaded
type StarshipRepository interface {
	ListAll(ctx context.Context) ([]models.Starship, error)
	GetByID(ctx context.Context, id uint) (*models.Starship, error)
}

type VehicleRepository interface {
	ListAll(ctx context.Context) ([]models.Vehicle, error)
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
}

type GenderRepository interface {
	ListAll(ctx context.Context) ([]models.Gender, error)
	GetByID(ctx context.Context, id uint) (*models.Gender, error)
}

type SpecieRepository interface {
	ListAll(ctx context.Context) ([]models.Specie, error)
	GetByID(ctx context.Context, id uint) (*models.Specie, error)
}

type DirectorRepository interface {
	ListAll(ctx context.Context) ([]models.Director, error)
	GetByID(ctx context.Context, id uint) (*models.Director, error)
}

// FavoriteRepository defines the methods for the user favorites join table
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
	// Add always inserts a new row, duplicates included
	Add(ctx context.Context, userID uint, kind string, targetID uint) (*models.Favorite, error)
	// RemoveFirst deletes the oldest matching row or returns gorm.ErrRecordNotFound
	RemoveFirst(ctx context.Context, userID uint, kind string, targetID uint) error
}
