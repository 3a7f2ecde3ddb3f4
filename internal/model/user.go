package model

import "time"

// users
type User struct {
	// Opaque identity assigned by the identity provider (e.g. "user-123").
	UID string `gorm:"type:varchar(64);primaryKey"`

	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string `gorm:"type:varchar(255)"`
	PhotoURL    string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Навигационные поля (опционально)
	Orders []Order `gorm:"foreignKey:UID;references:UID"`
}
