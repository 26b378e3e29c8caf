package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type ContractRepository struct {
	s *Store
}

func (s *Store) Contracts() *ContractRepository {
	return &ContractRepository{s: s}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.StayContract) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.contractByBooking[contract.BookingID]; exists {
		return domain.ErrAlreadyCheckedIn
	}

	for _, other := range r.s.contracts {
		if other.HotelID == contract.HotelID && other.RoomNumber == contract.RoomNumber && other.State() == domain.StayInProgress {
			return fmt.Errorf("room %s: %w", contract.RoomNumber, domain.ErrRoomOccupied)
		}
	}

	r.s.contracts[contract.ID] = *contract
	r.s.contractByBooking[contract.BookingID] = contract.ID

	r.s.onRollback(ctx, func() {
		delete(r.s.contracts, contract.ID)
		delete(r.s.contractByBooking, contract.BookingID)
	})

	return nil
}

func (r *ContractRepository) GetByID(_ context.Context, contractID uuid.UUID) (*domain.StayContract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.get(contractID)
}

func (r *ContractRepository) get(contractID uuid.UUID) (*domain.StayContract, error) {
	contract, ok := r.s.contracts[contractID]
	if !ok {
		return nil, fmt.Errorf("contract %s: %w", contractID, domain.ErrNotFound)
	}

	return &contract, nil
}

func (r *ContractRepository) GetForUpdate(ctx context.Context, contractID uuid.UUID) (*domain.StayContract, error) {
	if err := r.s.lock(ctx, "contract:"+contractID.String()); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, contractID)
}

func (r *ContractRepository) GetByBookingID(_ context.Context, bookingID uuid.UUID) (*domain.StayContract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.contractByBooking[bookingID]
	if !ok {
		return nil, fmt.Errorf("contract for booking %s: %w", bookingID, domain.ErrNotFound)
	}

	return r.get(id)
}

// FindOpenByRoom locks the room for the rest of the transaction so two check-ins cannot
// both see it free.
func (r *ContractRepository) FindOpenByRoom(ctx context.Context, hotelID uuid.UUID, roomNumber string) (*domain.StayContract, error) {
	if err := r.s.lock(ctx, fmt.Sprintf("room:%s:%s", hotelID, roomNumber)); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, contract := range r.s.contracts {
		if contract.HotelID == hotelID && contract.RoomNumber == roomNumber && contract.State() == domain.StayInProgress {
			return &contract, nil
		}
	}

	return nil, fmt.Errorf("open contract for room %s: %w", roomNumber, domain.ErrNotFound)
}

func (r *ContractRepository) UpdateCheckOut(ctx context.Context, contract *domain.StayContract) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	previous, ok := r.s.contracts[contract.ID]
	if !ok {
		return fmt.Errorf("contract %s: %w", contract.ID, domain.ErrNotFound)
	}

	r.s.onRollback(ctx, func() { r.s.contracts[contract.ID] = previous })

	updated := previous
	updated.CheckedOutAt = contract.CheckedOutAt
	r.s.contracts[contract.ID] = updated

	return nil
}

func (r *ContractRepository) List(_ context.Context) ([]domain.StayContract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	contracts := make([]domain.StayContract, 0, len(r.s.contracts))
	for _, contract := range r.s.contracts {
		contracts = append(contracts, contract)
	}

	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].CheckedInAt.After(contracts[j].CheckedInAt)
	})

	return contracts, nil
}
