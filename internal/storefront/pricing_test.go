package storefront

import (
	"errors"
	"testing"

	"github.com/luxstudio/storefront-core/internal/model"
)

func standardPortrait() *model.Service {
	return &model.Service{
		ID:    "svc-1",
		Name:  "Standard Portrait",
		Price: 1500000,
		Options: []model.ServiceOption{
			{Name: "Make up chuyên nghiệp", Price: 300000, Position: 1},
			{Name: "In ảnh album (10 trang)", Price: 500000, Position: 2},
		},
	}
}

func TestBuildQuote_BaseOnly(t *testing.T) {
	q, err := BuildQuote(standardPortrait(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 1500000 {
		t.Fatalf("expected total 1500000, got %d", q.Total)
	}
	if q.ServiceName != "Standard Portrait" {
		t.Fatalf("unexpected service name %q", q.ServiceName)
	}
	if len(q.Options) != 0 {
		t.Fatalf("expected no options, got %d", len(q.Options))
	}
}

func TestBuildQuote_WithOption(t *testing.T) {
	q, err := BuildQuote(standardPortrait(), []string{"Make up chuyên nghiệp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 1800000 {
		t.Fatalf("expected total 1800000, got %d", q.Total)
	}
	if len(q.Options) != 1 || q.Options[0].Price != 300000 {
		t.Fatalf("unexpected options snapshot: %+v", q.Options)
	}
}

func TestBuildQuote_AllOptions(t *testing.T) {
	q, err := BuildQuote(standardPortrait(), []string{"Make up chuyên nghiệp", "In ảnh album (10 trang)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 2300000 {
		t.Fatalf("expected total 2300000, got %d", q.Total)
	}
}

func TestBuildQuote_UnknownOption(t *testing.T) {
	_, err := BuildQuote(standardPortrait(), []string{"Drone footage"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestBuildQuote_DuplicateSelectionNeedsDuplicateRow(t *testing.T) {
	// The catalog row can only be claimed once per occurrence.
	_, err := BuildQuote(standardPortrait(), []string{"Make up chuyên nghiệp", "Make up chuyên nghiệp"})
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}

	svc := standardPortrait()
	svc.Options = append(svc.Options, model.ServiceOption{Name: "Make up chuyên nghiệp", Price: 300000, Position: 3})
	q, err := BuildQuote(svc, []string{"Make up chuyên nghiệp", "Make up chuyên nghiệp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Total != 2100000 {
		t.Fatalf("expected total 2100000, got %d", q.Total)
	}
}

func TestBuildQuote_SnapshotIsDetachedFromCatalog(t *testing.T) {
	svc := standardPortrait()
	q, err := BuildQuote(svc, []string{"Make up chuyên nghiệp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Later catalog edits must not reach the snapshot.
	svc.Price = 9999999
	svc.Options[0].Price = 1

	if q.Total != 1800000 {
		t.Fatalf("expected total 1800000 after catalog edit, got %d", q.Total)
	}
	if q.Options[0].Price != 300000 {
		t.Fatalf("expected snapshot price 300000, got %d", q.Options[0].Price)
	}
}
