package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
	EventStayCheckedIn    EventType = "stay.checked_in"
	EventStayCheckedOut   EventType = "stay.checked_out"
	EventInventorySeeded  EventType = "inventory.seeded"
)

// Event is a committed lifecycle change, published after the transaction that produced it.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	RoomTypeID uuid.UUID `json:"room_type_id"`
	BookingID  uuid.UUID `json:"booking_id,omitempty"`
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	Locator    string    `json:"locator,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

func NewEvent(typ EventType, roomTypeID uuid.UUID, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		RoomTypeID: roomTypeID,
		OccurredAt: at,
	}
}
