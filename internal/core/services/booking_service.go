package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

type CreateBookingRequest struct {
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      int
	Guests     int
	Customer   domain.Customer
	Notes      string
}

type BookingService struct {
	tx        ports.Transactor
	catalog   ports.CatalogRepository
	inventory ports.InventoryRepository
	bookings  ports.BookingRepository
	contracts ports.ContractRepository
	pricing   domain.PricingPolicy
	notifier  *notifier
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingService(
	tx ports.Transactor,
	catalog ports.CatalogRepository,
	inventory ports.InventoryRepository,
	bookings ports.BookingRepository,
	contracts ports.ContractRepository,
	cache ports.AvailabilityCache,
	publisher ports.EventPublisher,
	pricing domain.PricingPolicy,
	log *zap.Logger,
) *BookingService {
	log = orNop(log)

	return &BookingService{
		tx:        tx,
		catalog:   catalog,
		inventory: inventory,
		bookings:  bookings,
		contracts: contracts,
		pricing:   pricing,
		notifier:  newNotifier(cache, publisher, log),
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *CreateBookingRequest) validate() error {
	inputErr := domain.NewInputError()

	if r.RoomTypeID == uuid.Nil {
		inputErr.Add("room_type_id", "provide room_type_id")
	}

	if r.CheckIn.IsZero() {
		inputErr.Add("check_in", "provide check_in")
	}

	if r.CheckOut.IsZero() {
		inputErr.Add("check_out", "provide check_out")
	}

	if r.Rooms < 1 {
		inputErr.Add("rooms", "rooms must be at least 1")
	}

	if r.Guests < 1 {
		inputErr.Add("guests", "guests must be at least 1")
	}

	if email := strings.TrimSpace(r.Customer.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			inputErr.Add("customer.email", "provide valid email")
		}
	}

	if err := inputErr.OrNil(); err != nil {
		return err
	}

	return domain.ValidateRange(r.CheckIn, r.CheckOut)
}

// CreateBooking checks and decrements every night of the stay inside one transaction that holds
// the per-day locks. On any failure no inventory change survives.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	roomType, err := s.catalog.GetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("get room type %s: %w", req.RoomTypeID, err)
	}

	if !roomType.Bookable() {
		return nil, fmt.Errorf("room type %s is inactive: %w", req.RoomTypeID, domain.ErrNotFound)
	}

	checkIn, checkOut := domain.Date(req.CheckIn), domain.Date(req.CheckOut)

	if !roomType.Fits(req.Guests) {
		return nil, domain.NewAvailabilityError(roomType.ID, []time.Time{checkIn})
	}

	var booking *domain.Booking

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		days, err := s.inventory.LockRange(ctx, roomType.ID, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("lock inventory range: %w", err)
		}

		eval := domain.EvaluateRange(days, checkIn, checkOut, req.Rooms, s.pricing)
		if !eval.Available() {
			return domain.NewAvailabilityError(roomType.ID, eval.UnavailableDates)
		}

		if err := s.decrementRange(ctx, roomType.ID, domain.Nights(checkIn, checkOut), req.Rooms); err != nil {
			return err
		}

		now := s.now()
		bookingID := uuid.New()

		booking = &domain.Booking{
			ID:         bookingID,
			Locator:    uuid.NewString(),
			HotelID:    roomType.HotelID,
			RoomTypeID: roomType.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Rooms:      req.Rooms,
			Guests:     req.Guests,
			TotalPrice: eval.TotalPrice,
			Status:     domain.BookingActive,
			Customer:   req.Customer,
			Notes:      req.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := s.bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("locator", booking.Locator),
		zap.String("room_type_id", booking.RoomTypeID.String()),
		zap.Int("rooms", booking.Rooms),
		zap.Float64("total_price", booking.TotalPrice))

	event := domain.NewEvent(domain.EventBookingCreated, booking.RoomTypeID, booking.CreatedAt)
	event.BookingID = booking.ID
	event.Locator = booking.Locator
	event.Data = booking
	s.notifier.committed(ctx, booking.RoomTypeID, event)

	return booking, nil
}

// decrementRange takes rooms off every night. A night that lost its capacity to a concurrent
// writer undoes the nights already taken in this call and reports that night as unavailable.
// Any other store error leaves the undo to the transaction rollback.
func (s *BookingService) decrementRange(ctx context.Context, roomTypeID uuid.UUID, nights []time.Time, rooms int) error {
	applied := make([]time.Time, 0, len(nights))

	for _, night := range nights {
		err := s.inventory.Decrement(ctx, roomTypeID, night, rooms)
		if err == nil {
			applied = append(applied, night)
			continue
		}

		if errors.Is(err, domain.ErrInsufficientCapacity) {
			s.rollbackDecrements(ctx, roomTypeID, applied, rooms)
			return domain.NewAvailabilityError(roomTypeID, []time.Time{night})
		}

		return fmt.Errorf("decrement %s: %w", night.Format(domain.DateLayout), err)
	}

	return nil
}

func (s *BookingService) rollbackDecrements(ctx context.Context, roomTypeID uuid.UUID, nights []time.Time, rooms int) {
	for _, night := range nights {
		if err := s.inventory.Increment(ctx, roomTypeID, night, rooms); err != nil {
			s.log.Error("failed to roll back decrement",
				zap.String("room_type_id", roomTypeID.String()),
				zap.String("date", night.Format(domain.DateLayout)),
				zap.Error(err))
		}
	}
}

// CancelBooking releases the booked rooms on every night and marks the booking cancelled.
// Checked-in bookings cannot be cancelled.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		booking, err = s.bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking %s: %w", bookingID, err)
		}

		if !booking.IsActive() {
			return domain.ErrAlreadyCancelled
		}

		contract, err := s.contracts.GetByBookingID(ctx, bookingID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get contract for booking %s: %w", bookingID, err)
		}

		if contract.State() != domain.StayPending {
			return domain.ErrAlreadyCheckedIn
		}

		if _, err := s.inventory.LockRange(ctx, booking.RoomTypeID, booking.CheckIn, booking.CheckOut); err != nil {
			return fmt.Errorf("lock inventory range: %w", err)
		}

		for _, night := range booking.Nights() {
			if err := s.inventory.Increment(ctx, booking.RoomTypeID, night, booking.Rooms); err != nil {
				return fmt.Errorf("increment %s: %w", night.Format(domain.DateLayout), err)
			}
		}

		if err := booking.Cancel(s.now()); err != nil {
			return err
		}

		if err := s.bookings.UpdateStatus(ctx, booking); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("locator", booking.Locator))

	event := domain.NewEvent(domain.EventBookingCancelled, booking.RoomTypeID, *booking.CancelledAt)
	event.BookingID = booking.ID
	event.Locator = booking.Locator
	s.notifier.committed(ctx, booking.RoomTypeID, event)

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	return booking, nil
}

func (s *BookingService) GetBookingByLocator(ctx context.Context, locator string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByLocator(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("get booking by locator %s: %w", locator, err)
	}

	return booking, nil
}
