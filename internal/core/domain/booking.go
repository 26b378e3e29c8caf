package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingActive    BookingStatus = "ACTIVE"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Booking struct {
	ID          uuid.UUID     `json:"id"`
	Locator     string        `json:"locator"`
	HotelID     uuid.UUID     `json:"hotel_id"`
	RoomTypeID  uuid.UUID     `json:"room_type_id"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Rooms       int           `json:"rooms"`
	Guests      int           `json:"guests"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	Customer    Customer      `json:"customer"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingActive
}

func (b *Booking) Nights() []time.Time {
	return Nights(b.CheckIn, b.CheckOut)
}

func (b *Booking) Cancel(at time.Time) error {
	if b.Status == BookingCancelled {
		return ErrAlreadyCancelled
	}

	b.Status = BookingCancelled
	b.CancelledAt = &at
	b.UpdatedAt = at

	return nil
}
