package domain

import (
	"time"

	"github.com/google/uuid"
)

type StayState string

const (
	StayPending    StayState = "PENDING"
	StayInProgress StayState = "IN_PROGRESS"
	StayFinalized  StayState = "FINALIZED"
)

// StayContract exists from check-in on. A booking without one is Pending.
type StayContract struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"booking_id"`
	HotelID      uuid.UUID  `json:"hotel_id"`
	RoomNumber   string     `json:"room_number"`
	TotalAmount  float64    `json:"total_amount"`
	CheckedInAt  time.Time  `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}

func (c *StayContract) State() StayState {
	if c == nil || c.CheckedInAt.IsZero() {
		return StayPending
	}

	if c.CheckedOutAt != nil {
		return StayFinalized
	}

	return StayInProgress
}

func (c *StayContract) CheckOut(at time.Time) error {
	switch c.State() {
	case StayFinalized:
		return ErrAlreadyCheckedOut
	case StayPending:
		return ErrNotCheckedIn
	}

	c.CheckedOutAt = &at

	return nil
}
