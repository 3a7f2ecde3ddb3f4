package storefront

import (
	"errors"
	"testing"

	"github.com/luxstudio/storefront-core/internal/model"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
		want     bool
	}{
		{model.OrderStatusPending, model.OrderStatusDeposited, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusDeposited, model.OrderStatusCompleted, true},
		{model.OrderStatusDeposited, model.OrderStatusCancelled, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, false},
		{model.OrderStatusCompleted, model.OrderStatusPending, false},
		{model.OrderStatusCompleted, model.OrderStatusDeposited, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusDeposited, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransition_SameStatusIsNoop(t *testing.T) {
	for _, s := range []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusDeposited,
		model.OrderStatusCompleted,
		model.OrderStatusCancelled,
	} {
		if !CanTransition(s, s) {
			t.Errorf("CanTransition(%s, %s) = false, want true", s, s)
		}
	}
}

func TestCheckTransition_UnknownStatus(t *testing.T) {
	err := CheckTransition(model.OrderStatusPending, model.OrderStatus("shipped"))
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestRequiresConflictCheck(t *testing.T) {
	if !RequiresConflictCheck(model.OrderStatusDeposited) {
		t.Fatalf("deposited must require a conflict check")
	}
	if !RequiresConflictCheck(model.OrderStatusCompleted) {
		t.Fatalf("completed must require a conflict check")
	}
	if RequiresConflictCheck(model.OrderStatusPending) || RequiresConflictCheck(model.OrderStatusCancelled) {
		t.Fatalf("pending/cancelled must not require a conflict check")
	}
}
