package models

// Favorite links a user to a planet, film or person they marked.
// It corresponds to the 'Favorite' table. Duplicate rows for the same pair are allowed.
type Favorite struct {
	ID       uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   *uint `gorm:"index" json:"user_id"`
	PlanetID *uint `json:"planet_id"`
	FilmID   *uint `json:"film_id"`
	PeopleID *uint `json:"people_id"`

	// Relationships, never preloaded by the API
	User   *User   `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Planet *Planet `gorm:"foreignKey:PlanetID;references:PlanetID" json:"-"`
	Film   *Film   `gorm:"foreignKey:FilmID;references:FilmID" json:"-"`
	Person *Person `gorm:"foreignKey:PeopleID;references:CharacterID" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Favorite) TableName() string {
	return "Favorite"
}

// Favorite kinds served by the API.
const (
	FavoriteKindPlanet = "planet"
	FavoriteKindPeople = "people"
)
