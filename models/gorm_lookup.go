package models

// Lookup tables referenced by People and Film. None of them has outgoing relationships.

// Gender corresponds to the 'Gender' table.
type Gender struct {
	GenderID uint   `gorm:"column:gender_id;primaryKey;autoIncrement" json:"id"`
	Type     string `gorm:"size:250" json:"type"`
}

func (Gender) TableName() string {
	return "Gender"
}

// Specie corresponds to the 'Specie' table. The column is spelled 'languaje' in
// existing databases and in the API.
type Specie struct {
	SpecieID uint   `gorm:"column:specie_id;primaryKey;autoIncrement" json:"id"`
	Languaje string `gorm:"column:languaje;size:250" json:"languaje"`
}

func (Specie) TableName() string {
	return "Specie"
}

// Director corresponds to the 'Director' table. Its key column is 'directo_id'.
type Director struct {
	DirectorID uint   `gorm:"column:directo_id;primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"size:250" json:"name"`
}

func (Director) TableName() string {
	return "Director"
}
