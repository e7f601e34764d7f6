package models

// Planet corresponds to the 'Planet' table.
type Planet struct {
	PlanetID   uint   `gorm:"column:planet_id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"size:250" json:"name"`
	Population *int64 `json:"population"`
	Terrain    string `gorm:"size:250" json:"terrain"`
	Diameter   *int   `json:"diameter"`
}

func (Planet) TableName() string {
	return "Planet"
}
