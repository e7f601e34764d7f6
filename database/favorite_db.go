package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
)

var favoriteColumns = []string{"id", "user_id", "planet_id", "film_id", "people_id"}

// FavoriteDB runs the favorites join-table queries directly against the connection pool.
type FavoriteDB struct {
	DB   *sql.DB
	psql sq.StatementBuilderType
}

func NewFavoriteDB(db *sql.DB, dialect string) *FavoriteDB {
	return &FavoriteDB{DB: db, psql: StatementBuilder(dialect)}
}

// FavoriteColumn maps a favorite kind onto the column holding the target id.
func FavoriteColumn(kind string) (string, error) {
	switch kind {
	case models.FavoriteKindPlanet:
		return "planet_id", nil
	case models.FavoriteKindPeople:
		return "people_id", nil
	default:
		return "", fmt.Errorf("unsupported favorite kind %q", kind)
	}
}

func nullableID(v sql.NullInt64) *uint {
	if !v.Valid {
		return nil
	}
	id := uint(v.Int64)
	return &id
}

func nullableArg(id *uint) interface{} {
	if id == nil {
		return nil
	}
	return int64(*id)
}

// ListFavoritesByUser returns every favorite row of a user in insertion order
func (f *FavoriteDB) ListFavoritesByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	queryBuilder := f.psql.Select(favoriteColumns...).
		From(quoteTable("Favorite")).
		Where(sq.Eq{"user_id": int64(userID)}).
		OrderBy("id ASC")
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListFavoritesByUser: %w", err)
	}

	rows, err := f.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListFavoritesByUser query for user %d: %w", userID, err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var (
			fav                        models.Favorite
			user, planet, film, people sql.NullInt64
		)
		if err := rows.Scan(&fav.ID, &user, &planet, &film, &people); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row for user %d: %w", userID, err)
		}
		fav.UserID = nullableID(user)
		fav.PlanetID = nullableID(planet)
		fav.FilmID = nullableID(film)
		fav.PeopleID = nullableID(people)
		favorites = append(favorites, fav)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", err)
	}
	return favorites, nil
}

// InsertFavorite stores a new row and returns its id. No uniqueness is checked.
func (f *FavoriteDB) InsertFavorite(ctx context.Context, fav models.Favorite) (uint, error) {
	queryBuilder := f.psql.Insert(quoteTable("Favorite")).
		Columns("user_id", "planet_id", "film_id", "people_id").
		Values(nullableArg(fav.UserID), nullableArg(fav.PlanetID), nullableArg(fav.FilmID), nullableArg(fav.PeopleID)).
		Suffix("RETURNING id")
	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for InsertFavorite: %w", err)
	}

	var id int64
	if err := f.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to execute InsertFavorite: %w", err)
	}
	return uint(id), nil
}

// DeleteFirstFavorite removes the oldest row matching the user and the target id in
// the column of the given kind. Returns sql.ErrNoRows when nothing matches.
func (f *FavoriteDB) DeleteFirstFavorite(ctx context.Context, userID uint, kind string, targetID uint) error {
	column, err := FavoriteColumn(kind)
	if err != nil {
		return err
	}

	selectSQL, selectArgs, err := f.psql.Select("id").
		From(quoteTable("Favorite")).
		Where(sq.Eq{"user_id": int64(userID), column: int64(targetID)}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL for DeleteFirstFavorite lookup: %w", err)
	}

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin favorite delete transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, selectSQL, selectArgs...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("failed to look up favorite %s %d for user %d: %w", kind, targetID, userID, err)
	}

	deleteSQL, deleteArgs, err := f.psql.Delete(quoteTable("Favorite")).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL for DeleteFirstFavorite: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("failed to delete favorite %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit favorite delete: %w", err)
	}
	return nil
}
