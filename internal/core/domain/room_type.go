package domain

import "github.com/google/uuid"

// RoomType is owned by the catalog. The engine only reads it.
type RoomType struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Name        string
	CapacityMin int
	CapacityMax int
	BasePrice   float64
	Active      bool
	HotelActive bool
}

func (r *RoomType) Bookable() bool {
	return r.Active && r.HotelActive
}

func (r *RoomType) Fits(guests int) bool {
	return guests <= 0 || r.CapacityMax >= guests
}
