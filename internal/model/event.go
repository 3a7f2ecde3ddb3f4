package model

import (
	"time"

	"github.com/google/uuid"
)

// Тип события аудита.
type EventType string

const (
	EventTypeOrderCreated   EventType = "order_created"
	EventTypeOrderStatus    EventType = "order_status_changed"
	EventTypeOrderDelivered EventType = "order_delivered"
	EventTypeServiceSaved   EventType = "service_saved"
	EventTypeServiceDeleted EventType = "service_deleted"
	EventTypeUserLoggedIn   EventType = "user_logged_in"
)

// events — события аудита
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	UserUID string `gorm:"type:varchar(64);index"`
	OrderID string `gorm:"type:varchar(64);index"`

	Details string `gorm:"type:text"`
}
