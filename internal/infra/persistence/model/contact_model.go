package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessageModel mirrors the 'contactmessage' table. Rows are only ever inserted.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contactmessage"
}
