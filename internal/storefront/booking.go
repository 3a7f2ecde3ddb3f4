package storefront

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingField = errors.New("missing required booking field")

// DefaultShootTime подставляется, если клиент не выбрал время.
const DefaultShootTime = "09:00"

// BookingForm — поля формы бронирования.
type BookingForm struct {
	Date     string
	Time     string
	Location string
	Phone    string
}

// Normalize trims the fields, applies the default time and checks presence
// of date, location and phone. Presence only: formats and past dates are
// deliberately not validated here.
func (f *BookingForm) Normalize() error {
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Location = strings.TrimSpace(f.Location)
	f.Phone = strings.TrimSpace(f.Phone)

	if f.Time == "" {
		f.Time = DefaultShootTime
	}

	switch {
	case f.Date == "":
		return fmt.Errorf("%w: date", ErrMissingField)
	case f.Location == "":
		return fmt.Errorf("%w: location", ErrMissingField)
	case f.Phone == "":
		return fmt.Errorf("%w: phone", ErrMissingField)
	}
	return nil
}
