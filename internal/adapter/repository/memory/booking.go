package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type BookingRepository struct {
	s *Store
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{s: s}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}

	if _, exists := r.s.locators[booking.Locator]; exists {
		return fmt.Errorf("locator %s already exists", booking.Locator)
	}

	r.s.bookings[booking.ID] = *booking
	r.s.locators[booking.Locator] = booking.ID

	r.s.onRollback(ctx, func() {
		delete(r.s.bookings, booking.ID)
		delete(r.s.locators, booking.Locator)
	})

	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.get(bookingID)
}

func (r *BookingRepository) get(bookingID uuid.UUID) (*domain.Booking, error) {
	booking, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", bookingID, domain.ErrNotFound)
	}

	return &booking, nil
}

func (r *BookingRepository) GetByLocator(_ context.Context, locator string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.locators[locator]
	if !ok {
		return nil, fmt.Errorf("locator %s: %w", locator, domain.ErrNotFound)
	}

	return r.get(id)
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	if err := r.s.lock(ctx, "booking:"+bookingID.String()); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, bookingID)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	previous, ok := r.s.bookings[booking.ID]
	if !ok {
		return fmt.Errorf("booking %s: %w", booking.ID, domain.ErrNotFound)
	}

	r.s.onRollback(ctx, func() { r.s.bookings[booking.ID] = previous })

	updated := previous
	updated.Status = booking.Status
	updated.CancelledAt = booking.CancelledAt
	updated.UpdatedAt = booking.UpdatedAt
	r.s.bookings[booking.ID] = updated

	return nil
}
