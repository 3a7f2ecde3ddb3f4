package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDeposited OrderStatus = "deposited"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Vietnamese labels shown in the storefront UI.
var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:   "Chờ xác nhận",
	OrderStatusDeposited: "Đã cọc",
	OrderStatusCompleted: "Hoàn thành",
	OrderStatusCancelled: "Đã hủy",
}

func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDeposited, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OptionSnapshot is an add-on copied into the order at booking time.
// The catalog row may change or disappear afterwards; the snapshot stays.
type OptionSnapshot struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// orders
type Order struct {
	ID  string `gorm:"type:varchar(64);primaryKey"`
	UID string `gorm:"type:varchar(64);not null;index"`

	Email string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(32);not null"`

	// Shoot slot as entered by the client: date YYYY-MM-DD, time HH:MM.
	// Conflicts are exact-match on (date, time, location).
	ShootDate string `gorm:"type:varchar(10);not null;index"`
	ShootTime string `gorm:"type:varchar(5);not null"`
	Location  string `gorm:"type:varchar(255);not null"`

	// Snapshot of the booked package; no live reference to services.
	ServiceName string         `gorm:"type:varchar(255);not null"`
	Options     datatypes.JSON `gorm:"type:jsonb"`
	Total       int64          `gorm:"not null"`

	Status OrderStatus `gorm:"type:varchar(32);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	// Set once the job is delivered.
	DeliveryLink string `gorm:"type:text"`
	DeliveryPass string `gorm:"type:varchar(255)"`

	// Навигационные поля (опционально)
	User *User `gorm:"foreignKey:UID;references:UID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// SetOptions encodes the snapshot list into the JSON column.
func (o *Order) SetOptions(opts []OptionSnapshot) error {
	if opts == nil {
		opts = []OptionSnapshot{}
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	o.Options = datatypes.JSON(data)
	return nil
}

// OptionList decodes the snapshot list from the JSON column.
func (o *Order) OptionList() ([]OptionSnapshot, error) {
	if len(o.Options) == 0 {
		return []OptionSnapshot{}, nil
	}
	var opts []OptionSnapshot
	if err := json.Unmarshal(o.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
