package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
)

func ptr[T any](v T) *T {
	return &v
}

// seedTable inserts rows only when the table behind T is still empty
func seedTable[T any](tx *gorm.DB, rows []T) error {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed %d rows: %w", len(rows), err)
	}
	log.Info().Int("rows", len(rows)).Str("model", fmt.Sprintf("%T", new(T))).Msg("seeded table")
	return nil
}

// SeedStarWars fills empty tables with a small sample of the saga. Tables that already
// hold rows are left untouched, so it is safe to run on every startup.
func SeedStarWars(db *gorm.DB) error {
	users, err := seedUsers()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		steps := []func(*gorm.DB) error{
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Gender{
					{GenderID: 1, Type: "male"},
					{GenderID: 2, Type: "female"},
					{GenderID: 3, Type: "n/a"},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Specie{
					{SpecieID: 1, Languaje: "Galactic Basic"},
					{SpecieID: 2, Languaje: "Shyriiwook"},
					{SpecieID: 3, Languaje: "Binary"},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Director{
					{DirectorID: 1, Name: "George Lucas"},
					{DirectorID: 2, Name: "Irvin Kershner"},
					{DirectorID: 3, Name: "Richard Marquand"},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Vehicle{
					{VehicleID: 1, Name: "Sand Crawler", Model: "Digger Crawler"},
					{VehicleID: 2, Name: "X-34 landspeeder", Model: "X-34 landspeeder"},
					{VehicleID: 3, Name: "Snowspeeder", Model: "t-47 airspeeder"},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Planet{
					{PlanetID: 1, Name: "Tatooine", Population: ptr(int64(200000)), Terrain: "desert", Diameter: ptr(10465)},
					{PlanetID: 2, Name: "Alderaan", Population: ptr(int64(2000000000)), Terrain: "grasslands, mountains", Diameter: ptr(12500)},
					{PlanetID: 3, Name: "Yavin IV", Population: ptr(int64(1000)), Terrain: "jungle, rainforests", Diameter: ptr(10200)},
					{PlanetID: 4, Name: "Hoth", Terrain: "tundra, ice caves, mountain ranges", Diameter: ptr(7200)},
					{PlanetID: 5, Name: "Dagobah", Terrain: "swamp, jungles", Diameter: ptr(8900)},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Film{
					{FilmID: 1, Title: "A New Hope", Opening: "It is a period of civil war.", DirectorID: ptr(uint(1))},
					{FilmID: 2, Title: "The Empire Strikes Back", Opening: "It is a dark time for the Rebellion.", DirectorID: ptr(uint(2))},
					{FilmID: 3, Title: "Return of the Jedi", Opening: "Luke Skywalker has returned to his home planet of Tatooine.", DirectorID: ptr(uint(3))},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Person{
					{CharacterID: 1, Name: "Luke Skywalker", Height: ptr(172), GenderID: ptr(uint(1)), SpecieID: ptr(uint(1)), VehicleID: ptr(uint(3)), FilmID: ptr(uint(1)), PlanetID: ptr(uint(1))},
					{CharacterID: 2, Name: "C-3PO", Height: ptr(167), GenderID: ptr(uint(3)), SpecieID: ptr(uint(3)), FilmID: ptr(uint(1)), PlanetID: ptr(uint(1))},
					{CharacterID: 3, Name: "Leia Organa", Height: ptr(150), GenderID: ptr(uint(2)), SpecieID: ptr(uint(1)), FilmID: ptr(uint(2)), PlanetID: ptr(uint(2))},
					{CharacterID: 4, Name: "Chewbacca", Height: ptr(228), GenderID: ptr(uint(1)), SpecieID: ptr(uint(2)), FilmID: ptr(uint(3))},
					{CharacterID: 5, Name: "Yoda", Height: ptr(66), GenderID: ptr(uint(1)), PlanetID: ptr(uint(5))},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, []models.Starship{
					{StarshipID: 1, Name: "X-wing", PilotID: ptr(uint(1))},
					{StarshipID: 2, Name: "Millennium Falcon", PilotID: ptr(uint(4))},
					{StarshipID: 3, Name: "Death Star"},
				})
			},
			func(tx *gorm.DB) error {
				return seedTable(tx, users)
			},
		}

		for _, step := range steps {
			if err := step(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedUsers() ([]models.User, error) {
	users := []models.User{
		{ID: 1, Name: "Han", Username: "scruffylooking", Lastname: "Solo", SuscriptionDates: "1977-05-25", Email: "han@falcon.example"},
		{ID: 2, Name: "Padme", Username: "queenofnaboo", Lastname: "Amidala", SuscriptionDates: "1999-05-19", Email: "padme@naboo.example"},
	}
	for i := range users {
		if err := users[i].SetPassword(users[i].Username); err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", users[i].Username, err)
		}
	}
	return users, nil
}
