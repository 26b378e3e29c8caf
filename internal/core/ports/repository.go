package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

// Transactor runs fn in one atomic unit. Repositories called with the ctx passed to fn
// join that unit; a nested call reuses the outer one.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CatalogRepository interface {
	GetRoomType(ctx context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context, minGuests int) ([]domain.RoomType, error)
}

// InventoryRepository holds one row per (room type, date). Range bounds are [from, to).
type InventoryRepository interface {
	GetDay(ctx context.Context, roomTypeID uuid.UUID, date time.Time) (*domain.InventoryDay, error)
	GetRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error)
	LockRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error)
	SetDay(ctx context.Context, day domain.InventoryDay) (created bool, err error)
	SetClosed(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time, closed bool) (int, error)
	Decrement(ctx context.Context, roomTypeID uuid.UUID, date time.Time, rooms int) error
	Increment(ctx context.Context, roomTypeID uuid.UUID, date time.Time, rooms int) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	GetByLocator(ctx context.Context, locator string) (*domain.Booking, error)
	GetForUpdate(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, booking *domain.Booking) error
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.StayContract) error
	GetByID(ctx context.Context, contractID uuid.UUID) (*domain.StayContract, error)
	GetForUpdate(ctx context.Context, contractID uuid.UUID) (*domain.StayContract, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.StayContract, error)
	FindOpenByRoom(ctx context.Context, hotelID uuid.UUID, roomNumber string) (*domain.StayContract, error)
	UpdateCheckOut(ctx context.Context, contract *domain.StayContract) error
	List(ctx context.Context) ([]domain.StayContract, error)
}

type AvailabilityCache interface {
	Get(ctx context.Context, key AvailabilityKey) (*domain.Availability, error)
	Set(ctx context.Context, key AvailabilityKey, availability *domain.Availability) error
	Invalidate(ctx context.Context, roomTypeID uuid.UUID) error
}

type AvailabilityKey struct {
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      int
	Guests     int
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
