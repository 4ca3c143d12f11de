package model

import (
	"time"
)

// UserModel mirrors the 'agencyuser' table. The email is the primary key so
// the database rejects concurrent duplicate registrations.
type UserModel struct {
	Email        string    `gorm:"type:varchar(320);primaryKey"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(320);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "agencyuser"
}
