package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, locator, hotel_id, room_type_id, check_in, check_out, rooms, guests, total_price, status,
	customer_name, customer_email, customer_phone, notes, created_at, updated_at, cancelled_at`

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		booking.ID,
		booking.Locator,
		booking.HotelID,
		booking.RoomTypeID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Rooms,
		booking.Guests,
		booking.TotalPrice,
		booking.Status,
		booking.Customer.Name,
		booking.Customer.Email,
		booking.Customer.Phone,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
		booking.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", classify(err))
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	return r.getOne(ctx, query, bookingID)
}

func (r *BookingRepository) GetByLocator(ctx context.Context, locator string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE locator = $1`

	return r.getOne(ctx, query, locator)
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, bookingID)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt sql.NullTime

	err := conn(ctx, r.db).QueryRowContext(ctx, query, arg).Scan(
		&booking.ID,
		&booking.Locator,
		&booking.HotelID,
		&booking.RoomTypeID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Rooms,
		&booking.Guests,
		&booking.TotalPrice,
		&booking.Status,
		&booking.Customer.Name,
		&booking.Customer.Email,
		&booking.Customer.Phone,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&cancelledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %v: %w", arg, domain.ErrNotFound)
		}

		return nil, classify(err)
	}

	booking.CheckIn = domain.Date(booking.CheckIn)
	booking.CheckOut = domain.Date(booking.CheckOut)

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}

	return &booking, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, booking *domain.Booking) error {
	query := `
	UPDATE bookings
	SET status = $1, cancelled_at = $2, updated_at = $3
	WHERE id = $4
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, booking.Status, booking.CancelledAt, booking.UpdatedAt, booking.ID)
	if err != nil {
		return classify(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("booking %s: %w", booking.ID, domain.ErrNotFound)
	}

	return nil
}
