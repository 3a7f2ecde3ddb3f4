package storefront

import (
	"errors"
	"testing"
)

func TestBookingForm_Normalize_OK(t *testing.T) {
	f := BookingForm{
		Date:     " 2024-12-25 ",
		Time:     "",
		Location: "Studio Quận 1",
		Phone:    "0901234567",
	}
	if err := f.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Date != "2024-12-25" {
		t.Fatalf("expected trimmed date, got %q", f.Date)
	}
	if f.Time != DefaultShootTime {
		t.Fatalf("expected default time %q, got %q", DefaultShootTime, f.Time)
	}
}

func TestBookingForm_Normalize_MissingFields(t *testing.T) {
	cases := []BookingForm{
		{Time: "10:00", Location: "Studio", Phone: "0901"},      // no date
		{Date: "2025-01-01", Time: "10:00", Phone: "0901"},      // no location
		{Date: "2025-01-01", Time: "10:00", Location: "Studio"}, // no phone
		{Date: "   ", Time: "10:00", Location: "Studio", Phone: "0901"},
	}
	for i, f := range cases {
		if err := f.Normalize(); !errors.Is(err, ErrMissingField) {
			t.Errorf("case %d: expected ErrMissingField, got %v", i, err)
		}
	}
}
