package models

// Person represents a character in the database using GORM.
// It corresponds to the 'People' table.
type Person struct {
	CharacterID uint   `gorm:"column:character_id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:250" json:"name"`
	Height      *int   `json:"height"`

	// Foreign keys, all optional
	GenderID  *uint `json:"gender_id"`
	SpecieID  *uint `json:"specie_id"`
	VehicleID *uint `json:"vehicle_id"`
	FilmID    *uint `json:"film_id"`
	PlanetID  *uint `json:"planet_id"`

	// Relationships
	// nil unless preloaded or when the foreign key is null
	Gender  *Gender  `gorm:"foreignKey:GenderID;references:GenderID" json:"gender,omitempty"`
	Specie  *Specie  `gorm:"foreignKey:SpecieID;references:SpecieID" json:"specie,omitempty"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID;references:VehicleID" json:"vehicle,omitempty"`
	Film    *Film    `gorm:"foreignKey:FilmID;references:FilmID" json:"film,omitempty"`
	Planet  *Planet  `gorm:"foreignKey:PlanetID;references:PlanetID" json:"planet,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "People"
}
