package storefront

import (
	"errors"
	"fmt"

	"github.com/luxstudio/storefront-core/internal/model"
)

var ErrIllegalTransition = errors.New("illegal status transition")

// Разрешённые переходы статусов заказа. Завершённые и отменённые заказы
// дальше не двигаются; откаты назад не разрешены.
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:   {model.OrderStatusDeposited, model.OrderStatusCancelled},
	model.OrderStatusDeposited: {model.OrderStatusCompleted, model.OrderStatusCancelled},
	model.OrderStatusCompleted: {},
	model.OrderStatusCancelled: {},
}

// CanTransition reports whether from -> to is permitted. Re-asserting the
// current status is treated as a no-op and allowed.
func CanTransition(from, to model.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition возвращает ошибку для запрещённого перехода.
func CheckTransition(from, to model.OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// RequiresConflictCheck: только подтверждающие переходы занимают слот.
func RequiresConflictCheck(to model.OrderStatus) bool {
	return to == model.OrderStatusDeposited || to == model.OrderStatusCompleted
}
