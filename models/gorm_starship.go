package models

// Starship corresponds to the 'Starship' table.
// The pilot is a Person and may be absent.
type Starship struct {
	StarshipID uint    `gorm:"column:starship_id;primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"size:250" json:"name"`
	PilotID    *uint   `json:"pilot_id"`
	Pilot      *Person `gorm:"foreignKey:PilotID;references:CharacterID" json:"pilot,omitempty"`
}

func (Starship) TableName() string {
	return "Starship"
}
