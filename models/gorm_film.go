package models

// Film represents a movie of the saga using GORM.
// It corresponds to the 'Film' table.
type Film struct {
	FilmID     uint      `gorm:"column:film_id;primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"size:250" json:"title"`
	Opening    string    `gorm:"size:250" json:"opening"` // opening crawl
	DirectorID *uint     `json:"director_id"`
	Director   *Director `gorm:"foreignKey:DirectorID;references:DirectorID" json:"director,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Film) TableName() string {
	return "Film"
}
