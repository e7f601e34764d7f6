package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/config"
	"github.com/4GeeksAcademy/cdavis-starwars-api/database"
	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.InitGormDB(config.Config{
		DatabasePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		GormLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func TestPersonRepositoryPreloadsRelations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Gender{GenderID: 1, Type: "male"}).Error)
	require.NoError(t, db.Create(&models.Specie{SpecieID: 2, Languaje: "Shyriiwook"}).Error)
	require.NoError(t, db.Create(&models.Vehicle{VehicleID: 3, Name: "Snowspeeder", Model: "t-47 airspeeder"}).Error)
	require.NoError(t, db.Create(&models.Film{FilmID: 4, Title: "The Empire Strikes Back"}).Error)
	require.NoError(t, db.Create(&models.Person{
		CharacterID: 10,
		Name:        "Chewbacca",
		GenderID:    uintPtr(1),
		SpecieID:    uintPtr(2),
		VehicleID:   uintPtr(3),
		FilmID:      uintPtr(4),
	}).Error)
	require.NoError(t, db.Create(&models.Person{CharacterID: 11, Name: "Unknown"}).Error)

	repo := NewGormPersonRepository(db)

	person, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, person.Gender)
	require.NotNil(t, person.Specie)
	require.NotNil(t, person.Vehicle)
	require.NotNil(t, person.Film)
	assert.Equal(t, "male", person.Gender.Type)
	assert.Equal(t, "Shyriiwook", person.Specie.Languaje)
	assert.Equal(t, "Snowspeeder", person.Vehicle.Name)
	assert.Equal(t, "The Empire Strikes Back", person.Film.Title)

	people, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, uint(10), people[0].CharacterID)
	assert.Nil(t, people[1].Gender)
	assert.Nil(t, people[1].Film)
}

func TestGetByIDReturnsRecordNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := NewGormPlanetRepository(db).GetByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = NewGormUserRepository(db).GetByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = NewGormDirectorRepository(db).GetByID(ctx, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListAllOnEmptyTableReturnsEmptySlice(t *testing.T) {
	db := newTestDB(t)

	vehicles, err := NewGormVehicleRepository(db).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestStarshipRepositoryPreloadsPilot(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Person{CharacterID: 1, Name: "Luke Skywalker"}).Error)
	require.NoError(t, db.Create(&models.Starship{StarshipID: 1, Name: "X-wing", PilotID: uintPtr(1)}).Error)
	require.NoError(t, db.Create(&models.Starship{StarshipID: 2, Name: "Death Star"}).Error)

	ships, err := NewGormStarshipRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, ships, 2)
	require.NotNil(t, ships[0].Pilot)
	assert.Equal(t, "Luke Skywalker", ships[0].Pilot.Name)
	assert.Nil(t, ships[1].Pilot)
}

func TestDirectorRepositoryUsesLegacyKeyColumn(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Director{DirectorID: 7, Name: "Irvin Kershner"}).Error)

	director, err := NewGormDirectorRepository(db).GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Irvin Kershner", director.Name)
}

func TestFavoriteRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repos, err := NewRepositories(newTestDB(t))
	require.NoError(t, err)
	favorites := repos.Favorites

	fav, err := favorites.Add(ctx, 3, models.FavoriteKindPlanet, 5)
	require.NoError(t, err)
	assert.NotZero(t, fav.ID)
	assert.Equal(t, uint(5), *fav.PlanetID)

	_, err = favorites.Add(ctx, 3, models.FavoriteKindPlanet, 5)
	require.NoError(t, err, "duplicates are accepted")

	_, err = favorites.Add(ctx, 3, models.FavoriteKindPeople, 1)
	require.NoError(t, err)

	list, err := favorites.ListByUser(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	require.NoError(t, favorites.RemoveFirst(ctx, 3, models.FavoriteKindPlanet, 5))
	require.NoError(t, favorites.RemoveFirst(ctx, 3, models.FavoriteKindPlanet, 5))
	assert.ErrorIs(t, favorites.RemoveFirst(ctx, 3, models.FavoriteKindPlanet, 5), gorm.ErrRecordNotFound)

	require.NoError(t, favorites.RemoveFirst(ctx, 3, models.FavoriteKindPeople, 1))
	assert.ErrorIs(t, favorites.RemoveFirst(ctx, 3, models.FavoriteKindPeople, 1), gorm.ErrRecordNotFound)
}

func TestFavoriteRepositoryRejectsUnknownKind(t *testing.T) {
	repos, err := NewRepositories(newTestDB(t))
	require.NoError(t, err)

	_, err = repos.Favorites.Add(context.Background(), 1, "film", 1)
	assert.Error(t, err)
}
