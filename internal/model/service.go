package model

import "time"

// services — каталог пакетов съёмки.
type Service struct {
	// String id in the "svc-<suffix>" form the storefront has always used.
	ID string `gorm:"type:varchar(64);primaryKey"`

	Name string `gorm:"type:varchar(255);not null"`

	// Base price in whole VND.
	Price int64 `gorm:"not null"`

	Description string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Position preserves catalog ordering across updates.
	Position int `gorm:"not null;default:0;index"`

	Options []ServiceOption `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// service_options — add-ons of a catalog entry. The list is free-form:
// duplicate names and zero prices are allowed.
type ServiceOption struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ServiceID string `gorm:"type:varchar(64);not null;index"`

	Name  string `gorm:"type:varchar(255);not null"`
	Price int64  `gorm:"not null"`

	// Ordering within the service.
	Position int `gorm:"not null;default:0"`

	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
