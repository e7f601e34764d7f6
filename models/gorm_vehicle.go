package models

// Vehicle corresponds to the 'Vehicle' table.
type Vehicle struct {
	VehicleID uint   `gorm:"column:vehicle_id;primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:250" json:"name"`
	Model     string `gorm:"size:250" json:"model"`
}

func (Vehicle) TableName() string {
	return "Vehicle"
}
