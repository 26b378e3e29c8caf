package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The models below only describe the schema. Reads and writes go through the
// database/sql repositories, which depend on the table, column and index names declared here.

type Hotel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	Active bool      `gorm:"not null;default:true"`
}

func (Hotel) TableName() string { return "hotels" }

type RoomType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HotelID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Hotel       *Hotel    `gorm:"foreignKey:HotelID"`
	Name        string    `gorm:"not null"`
	CapacityMin int       `gorm:"not null;default:1"`
	CapacityMax int       `gorm:"not null"`
	BasePrice   float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Active      bool      `gorm:"not null;default:true"`
}

func (RoomType) TableName() string { return "room_types" }

// InventoryDay is keyed by (room_type_id, night); the inventory upsert conflicts on that key.
type InventoryDay struct {
	RoomTypeID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Night             time.Time `gorm:"type:date;primaryKey"`
	CapacityAvailable int       `gorm:"not null;check:chk_inventory_days_capacity,capacity_available >= 0"`
	Price             *float64  `gorm:"type:decimal(10,2)"`
	Closed            bool      `gorm:"not null;default:false"`
}

func (InventoryDay) TableName() string { return "inventory_days" }

type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Locator       string    `gorm:"not null;uniqueIndex:bookings_locator_key"`
	HotelID       uuid.UUID `gorm:"type:uuid;not null"`
	RoomTypeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckIn       time.Time `gorm:"type:date;not null"`
	CheckOut      time.Time `gorm:"type:date;not null"`
	Rooms         int       `gorm:"not null"`
	Guests        int       `gorm:"not null;default:0"`
	TotalPrice    float64   `gorm:"type:decimal(10,2);not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CancelledAt   *time.Time
}

func (Booking) TableName() string { return "bookings" }

// StayContract allows one contract per booking and one open contract per hotel room.
type StayContract struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookingID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:stay_contracts_booking_id_key"`
	HotelID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:stay_contracts_open_room_idx,where:checked_out_at IS NULL"`
	RoomNumber   string     `gorm:"not null;uniqueIndex:stay_contracts_open_room_idx,where:checked_out_at IS NULL"`
	TotalAmount  float64    `gorm:"type:decimal(10,2);not null"`
	CheckedInAt  time.Time  `gorm:"not null;index"`
	CheckedOutAt *time.Time
}

func (StayContract) TableName() string { return "stay_contracts" }

func Models() []any {
	return []any{&Hotel{}, &RoomType{}, &InventoryDay{}, &Booking{}, &StayContract{}}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
