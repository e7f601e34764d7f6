package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered fan of the archive.
// It corresponds to the 'User' table.
type User struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"size:250;not null" json:"name"`
	Username         string `gorm:"size:250;not null" json:"username"`
	Lastname         string `gorm:"size:250;not null" json:"lastname"`
	SuscriptionDates string `gorm:"column:suscription_dates;size:250;not null" json:"suscription"`
	Password         string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Email            string `gorm:"size:250;not null" json:"email"`
	// Favorites is a free-form column kept for schema compatibility, it is not
	// derived from the Favorite table.
	Favorites *string `gorm:"size:250" json:"favorites"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "User"
}

// SetPassword hashes the given password and sets it on the user model.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the given password matches the user's hashed password.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
