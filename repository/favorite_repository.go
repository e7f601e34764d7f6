package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/database"
	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
)

// SQLFavoriteRepository handles the favorites join table through squirrel-built queries
type SQLFavoriteRepository struct {
	store *database.FavoriteDB
}

// NewSQLFavoriteRepository shares the connection pool of the given GORM instance
func NewSQLFavoriteRepository(db *gorm.DB) (*SQLFavoriteRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	return &SQLFavoriteRepository{store: database.NewFavoriteDB(sqlDB, db.Dialector.Name())}, nil
}

func (r *SQLFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return r.store.ListFavoritesByUser(ctx, userID)
}

func (r *SQLFavoriteRepository) Add(ctx context.Context, userID uint, kind string, targetID uint) (*models.Favorite, error) {
	fav := models.Favorite{UserID: &userID}
	switch kind {
	case models.FavoriteKindPlanet:
		fav.PlanetID = &targetID
	case models.FavoriteKindPeople:
		fav.PeopleID = &targetID
	default:
		return nil, fmt.Errorf("unsupported favorite kind %q", kind)
	}

	id, err := r.store.InsertFavorite(ctx, fav)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite %s %d for user %d: %w", kind, targetID, userID, err)
	}
	fav.ID = id
	return &fav, nil
}

func (r *SQLFavoriteRepository) RemoveFirst(ctx context.Context, userID uint, kind string, targetID uint) error {
	err := r.store.DeleteFirstFavorite(ctx, userID, kind, targetID)
	if errors.Is(err, sql.ErrNoRows) {
		return gorm.ErrRecordNotFound
	}
	return err
}
