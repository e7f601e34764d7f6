package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/config"
	"github.com/4GeeksAcademy/cdavis-starwars-api/database"
	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

func uintPtr(v uint) *uint {
	return &v
}

func intPtr(v int) *int {
	return &v
}

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

func newTestRouter(t *testing.T, db *gorm.DB) *chi.Mux {
	t.Helper()
	repos, err := repository.NewRepositories(db)
	require.NoError(t, err)
	return NewRouter(repos, RouterOptions{})
}

// seedFixtures loads a small, fully known dataset. Person 1 has no film on purpose.
func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	favorites := "planets"
	rows := []interface{}{
		&[]models.Gender{{GenderID: 1, Type: "male"}, {GenderID: 2, Type: "female"}},
		&[]models.Specie{{SpecieID: 1, Languaje: "Galactic Basic"}, {SpecieID: 2, Languaje: "Shyriiwook"}},
		&[]models.Director{{DirectorID: 1, Name: "George Lucas"}, {DirectorID: 2, Name: "Irvin Kershner"}},
		&[]models.Vehicle{{VehicleID: 1, Name: "Snowspeeder", Model: "t-47 airspeeder"}, {VehicleID: 2, Name: "Sand Crawler", Model: "Digger Crawler"}},
		&[]models.Film{
			{FilmID: 1, Title: "A New Hope", Opening: "It is a period of civil war.", DirectorID: uintPtr(1)},
			{FilmID: 2, Title: "Untitled", Opening: "Unknown"},
		},
		&[]models.Planet{
			{PlanetID: 1, Name: "Tatooine", Population: func() *int64 { v := int64(200000); return &v }(), Terrain: "desert", Diameter: intPtr(10465)},
			{PlanetID: 5, Name: "Dagobah", Terrain: "swamp, jungles", Diameter: intPtr(8900)},
		},
		&[]models.Person{
			{CharacterID: 1, Name: "Yoda", Height: intPtr(66), GenderID: uintPtr(1)},
			{CharacterID: 2, Name: "Luke Skywalker", Height: intPtr(172), GenderID: uintPtr(1), SpecieID: uintPtr(1), VehicleID: uintPtr(1), FilmID: uintPtr(1), PlanetID: uintPtr(1)},
			{CharacterID: 3, Name: "Chewbacca", Height: intPtr(228), SpecieID: uintPtr(2)},
		},
		&[]models.Starship{
			{StarshipID: 1, Name: "X-wing", PilotID: uintPtr(2)},
			{StarshipID: 2, Name: "Death Star"},
		},
		&[]models.User{
			{ID: 1, Name: "Han", Username: "scruffylooking", Lastname: "Solo", SuscriptionDates: "1977-05-25", Password: "not-a-real-hash", Email: "han@falcon.example", Favorites: &favorites},
			{ID: 3, Name: "Padme", Username: "queenofnaboo", Lastname: "Amidala", SuscriptionDates: "1999-05-19", Password: "not-a-real-hash", Email: "padme@naboo.example"},
		},
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}

func doRequest(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
