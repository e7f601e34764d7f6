package repository

import (
	"gorm.io/gorm"
)

// Repositories bundles every data-access dependency of the HTTP layer
type Repositories struct {
	Users     UserRepository
	People    PersonRepository
	Planets   PlanetRepository
	Films     FilmRepository
	Starships StarshipRepository
	Vehicles  VehicleRepository
	Genders   GenderRepository
	Species   SpecieRepository
	Directors DirectorRepository
	Favorites FavoriteRepository
}

func NewRepositories(db *gorm.DB) (*Repositories, error) {
	favorites, err := NewSQLFavoriteRepository(db)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Users:     NewGormUserRepository(db),
		People:    NewGormPersonRepository(db),
		Planets:   NewGormPlanetRepository(db),
		Films:     NewGormFilmRepository(db),
		Starships: NewGormStarshipRepository(db),
		Vehicles:  NewGormVehicleRepository(db),
		Genders:   NewGormGenderRepository(db),
		Species:   NewGormSpecieRepository(db),
		Directors: NewGormDirectorRepository(db),
		Favorites: favorites,
	}, nil
}
