package model

import "github.com/google/uuid"

// Идентификаторы в исторических префиксных форматах витрины.

func NewServiceID() string {
	return "svc-" + uuid.NewString()
}

func NewOrderID() string {
	return "ord-" + uuid.NewString()
}
