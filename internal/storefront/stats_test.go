package storefront

import "testing"

func TestSummarize_Rate(t *testing.T) {
	s := Summarize(10, 2, 3, 4, 1)
	if s.Total != 10 || s.Pending != 2 || s.Deposited != 3 || s.Completed != 4 || s.Cancelled != 1 {
		t.Fatalf("counts passed through wrong: %+v", s)
	}
	// 4 / (10 - 1) * 100
	want := 4.0 / 9.0 * 100
	if s.CompletionRate != want {
		t.Fatalf("expected rate %v, got %v", want, s.CompletionRate)
	}
}

func TestSummarize_AllCancelled(t *testing.T) {
	s := Summarize(3, 0, 0, 0, 3)
	if s.CompletionRate != 0 {
		t.Fatalf("expected rate 0 when every order is cancelled, got %v", s.CompletionRate)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(0, 0, 0, 0, 0)
	if s.CompletionRate != 0 {
		t.Fatalf("expected rate 0 for empty stats, got %v", s.CompletionRate)
	}
}
