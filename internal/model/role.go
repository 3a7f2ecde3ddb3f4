package model

// Role codes known to the storefront.
const (
	RoleCodeClient = "client"
	RoleCodeAdmin  = "admin"
)

// roles
type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Code string `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name string `gorm:"type:varchar(255)"`
}

// user_roles — связывает пользователей и роли (комбинированный PK)
type UserRole struct {
	RoleID int64  `gorm:"primaryKey;index"`
	UserID string `gorm:"type:varchar(64);primaryKey;index"`

	// Навигационные поля (по желанию)
	Role *Role `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	User *User `gorm:"foreignKey:UserID;references:UID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
