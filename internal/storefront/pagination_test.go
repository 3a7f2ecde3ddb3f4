package storefront

import "testing"

func TestPaginate_FirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	p := Paginate(items, 1, 2)
	if len(p.Items) != 2 || p.Items[0] != 1 || p.Items[1] != 2 {
		t.Fatalf("unexpected page items: %v", p.Items)
	}
	if p.HasPrev {
		t.Fatalf("first page must not have prev")
	}
	if !p.HasNext {
		t.Fatalf("expected next page")
	}
	if p.Total != 5 {
		t.Fatalf("expected total 5, got %d", p.Total)
	}
}

func TestPaginate_LastShortPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	p := Paginate(items, 3, 2)
	if len(p.Items) != 1 || p.Items[0] != 5 {
		t.Fatalf("unexpected page items: %v", p.Items)
	}
	if p.HasNext {
		t.Fatalf("last page must not have next")
	}
	if !p.HasPrev {
		t.Fatalf("expected prev page")
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []int{1, 2, 3}
	p := Paginate(items, 10, 2)
	if len(p.Items) != 0 {
		t.Fatalf("expected empty page, got %v", p.Items)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 25)
	p := Paginate(items, 0, 0)
	if p.Page != 1 || p.PageSize != 10 {
		t.Fatalf("expected defaults page=1 size=10, got page=%d size=%d", p.Page, p.PageSize)
	}
	if len(p.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(p.Items))
	}
}
