package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

type ContractList struct {
	Total      int                   `json:"total"`
	InProgress int                   `json:"in_progress"`
	Finalized  int                   `json:"finalized"`
	Contracts  []domain.StayContract `json:"contracts"`
}

// StayService drives a booking through check-in and check-out. It never touches inventory.
type StayService struct {
	tx        ports.Transactor
	bookings  ports.BookingRepository
	contracts ports.ContractRepository
	notifier  *notifier
	log       *zap.Logger
	now       func() time.Time
}

func NewStayService(
	tx ports.Transactor,
	bookings ports.BookingRepository,
	contracts ports.ContractRepository,
	publisher ports.EventPublisher,
	log *zap.Logger,
) *StayService {
	log = orNop(log)

	return &StayService{
		tx:        tx,
		bookings:  bookings,
		contracts: contracts,
		notifier:  newNotifier(nil, publisher, log),
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *StayService) CheckIn(ctx context.Context, bookingID uuid.UUID, roomNumber string) (*domain.StayContract, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		inputErr := domain.NewInputError()
		inputErr.Add("room_number", "provide room_number")

		return nil, inputErr
	}

	var (
		contract *domain.StayContract
		booking  *domain.Booking
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		booking, err = s.bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("get booking %s: %w", bookingID, err)
		}

		existing, err := s.contracts.GetByBookingID(ctx, bookingID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get contract for booking %s: %w", bookingID, err)
		}

		if existing.State() != domain.StayPending {
			return domain.ErrAlreadyCheckedIn
		}

		if !booking.IsActive() {
			return domain.ErrBookingNotActive
		}

		occupant, err := s.contracts.FindOpenByRoom(ctx, booking.HotelID, roomNumber)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find open contract for room %s: %w", roomNumber, err)
		}

		if occupant != nil {
			return fmt.Errorf("room %s: %w", roomNumber, domain.ErrRoomOccupied)
		}

		contract = &domain.StayContract{
			ID:          uuid.New(),
			BookingID:   booking.ID,
			HotelID:     booking.HotelID,
			RoomNumber:  roomNumber,
			TotalAmount: booking.TotalPrice,
			CheckedInAt: s.now(),
		}

		if err := s.contracts.Create(ctx, contract); err != nil {
			return fmt.Errorf("create contract: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("guest checked in",
		zap.String("booking_id", bookingID.String()),
		zap.String("contract_id", contract.ID.String()),
		zap.String("room_number", contract.RoomNumber))

	event := domain.NewEvent(domain.EventStayCheckedIn, booking.RoomTypeID, contract.CheckedInAt)
	event.BookingID = booking.ID
	event.ContractID = contract.ID
	event.Locator = booking.Locator
	event.Data = contract
	s.notifier.publish(ctx, event)

	return contract, nil
}

func (s *StayService) CheckOut(ctx context.Context, contractID uuid.UUID) (*domain.StayContract, error) {
	var (
		contract *domain.StayContract
		booking  *domain.Booking
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		contract, err = s.contracts.GetForUpdate(ctx, contractID)
		if err != nil {
			return fmt.Errorf("get contract %s: %w", contractID, err)
		}

		if err := contract.CheckOut(s.now()); err != nil {
			return err
		}

		if err := s.contracts.UpdateCheckOut(ctx, contract); err != nil {
			return fmt.Errorf("update contract: %w", err)
		}

		booking, err = s.bookings.GetByID(ctx, contract.BookingID)
		if err != nil {
			return fmt.Errorf("get booking %s: %w", contract.BookingID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("guest checked out",
		zap.String("contract_id", contract.ID.String()),
		zap.String("room_number", contract.RoomNumber))

	event := domain.NewEvent(domain.EventStayCheckedOut, booking.RoomTypeID, *contract.CheckedOutAt)
	event.BookingID = contract.BookingID
	event.ContractID = contract.ID
	event.Locator = booking.Locator
	s.notifier.publish(ctx, event)

	return contract, nil
}

// StayState reports Pending for an existing booking that has no contract yet.
func (s *StayService) StayState(ctx context.Context, bookingID uuid.UUID) (domain.StayState, *domain.StayContract, error) {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return "", nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	contract, err := s.contracts.GetByBookingID(ctx, bookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.StayPending, nil, nil
	}

	if err != nil {
		return "", nil, fmt.Errorf("get contract for booking %s: %w", bookingID, err)
	}

	return contract.State(), contract, nil
}

func (s *StayService) ListContracts(ctx context.Context) (*ContractList, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	if contracts == nil {
		contracts = []domain.StayContract{}
	}

	list := &ContractList{Total: len(contracts), Contracts: contracts}

	for i := range contracts {
		switch contracts[i].State() {
		case domain.StayInProgress:
			list.InProgress++
		case domain.StayFinalized:
			list.Finalized++
		}
	}

	return list, nil
}
