package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей ядра витрины.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Role{},
		&UserRole{},
		&Service{},
		&ServiceOption{},
		&Order{},
		&Event{},
	)
}
