package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

type AvailabilityQuery struct {
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      int
	Guests     int
}

type SearchQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    int
	Guests   int
}

// AvailabilityService answers read-only availability questions. It never locks.
type AvailabilityService struct {
	catalog   ports.CatalogRepository
	inventory ports.InventoryRepository
	cache     ports.AvailabilityCache
	pricing   domain.PricingPolicy
	log       *zap.Logger
}

func NewAvailabilityService(
	catalog ports.CatalogRepository,
	inventory ports.InventoryRepository,
	cache ports.AvailabilityCache,
	pricing domain.PricingPolicy,
	log *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		catalog:   catalog,
		inventory: inventory,
		cache:     cache,
		pricing:   pricing,
		log:       orNop(log),
	}
}

func validateStay(checkIn, checkOut time.Time, rooms, guests int) error {
	inputErr := domain.NewInputError()

	if checkIn.IsZero() {
		inputErr.Add("check_in", "provide check_in")
	}

	if checkOut.IsZero() {
		inputErr.Add("check_out", "provide check_out")
	}

	if rooms < 1 {
		inputErr.Add("rooms", "rooms must be at least 1")
	}

	if guests < 0 {
		inputErr.Add("guests", "guests must not be negative")
	}

	if err := inputErr.OrNil(); err != nil {
		return err
	}

	return domain.ValidateRange(checkIn, checkOut)
}

func (q AvailabilityQuery) key() ports.AvailabilityKey {
	return ports.AvailabilityKey{
		RoomTypeID: q.RoomTypeID,
		CheckIn:    domain.Date(q.CheckIn),
		CheckOut:   domain.Date(q.CheckOut),
		Rooms:      q.Rooms,
		Guests:     q.Guests,
	}
}

// CheckAvailability scans every night of the stay. A room type whose capacity_max is below the
// guest count is reported as a shortfall on the first night.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, q AvailabilityQuery) (*domain.Availability, error) {
	if err := validateStay(q.CheckIn, q.CheckOut, q.Rooms, q.Guests); err != nil {
		return nil, err
	}

	if cached := s.cached(ctx, q.key()); cached != nil {
		return cached, nil
	}

	roomType, err := s.catalog.GetRoomType(ctx, q.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("get room type %s: %w", q.RoomTypeID, err)
	}

	availability, err := s.evaluate(ctx, roomType, q.CheckIn, q.CheckOut, q.Rooms, q.Guests)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q.key(), availability); err != nil {
			s.log.Warn("failed to cache availability",
				zap.String("room_type_id", q.RoomTypeID.String()),
				zap.Error(err))
		}
	}

	return availability, nil
}

func (s *AvailabilityService) cached(ctx context.Context, key ports.AvailabilityKey) *domain.Availability {
	if s.cache == nil {
		return nil
	}

	availability, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("failed to read availability cache",
			zap.String("room_type_id", key.RoomTypeID.String()),
			zap.Error(err))

		return nil
	}

	return availability
}

func (s *AvailabilityService) evaluate(
	ctx context.Context,
	roomType *domain.RoomType,
	checkIn, checkOut time.Time,
	rooms, guests int,
) (*domain.Availability, error) {
	from, to := domain.Date(checkIn), domain.Date(checkOut)

	availability := &domain.Availability{
		RoomTypeID:  roomType.ID,
		HotelID:     roomType.HotelID,
		RoomType:    roomType.Name,
		CapacityMax: roomType.CapacityMax,
		CheckIn:     from,
		CheckOut:    to,
		Rooms:       rooms,
	}

	if !roomType.Bookable() || !roomType.Fits(guests) {
		availability.Shortfall = &domain.Shortfall{FirstUnavailableDate: from}
		return availability, nil
	}

	days, err := s.inventory.GetRange(ctx, roomType.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("get inventory range: %w", err)
	}

	eval := domain.EvaluateRange(days, from, to, rooms, s.pricing)
	if !eval.Available() {
		availability.Shortfall = &domain.Shortfall{FirstUnavailableDate: eval.UnavailableDates[0]}
		return availability, nil
	}

	availability.MinCapacity = eval.MinCapacity
	availability.TotalPrice = eval.TotalPrice

	return availability, nil
}

// Search lists every active room type that can host the guests and is sellable on all nights.
func (s *AvailabilityService) Search(ctx context.Context, q SearchQuery) ([]domain.Availability, error) {
	if err := validateStay(q.CheckIn, q.CheckOut, q.Rooms, q.Guests); err != nil {
		return nil, err
	}

	roomTypes, err := s.catalog.ListRoomTypes(ctx, q.Guests)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}

	results := make([]domain.Availability, 0, len(roomTypes))

	for i := range roomTypes {
		availability, err := s.evaluate(ctx, &roomTypes[i], q.CheckIn, q.CheckOut, q.Rooms, q.Guests)
		if err != nil {
			return nil, err
		}

		if availability.Available() {
			results = append(results, *availability)
		}
	}

	return results, nil
}

// Calendar returns the stored days in [from, to) ordered by date.
func (s *AvailabilityService) Calendar(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error) {
	if err := domain.ValidateRange(from, to); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetRoomType(ctx, roomTypeID); err != nil {
		return nil, fmt.Errorf("get room type %s: %w", roomTypeID, err)
	}

	days, err := s.inventory.GetRange(ctx, roomTypeID, domain.Date(from), domain.Date(to))
	if err != nil {
		return nil, fmt.Errorf("get inventory range: %w", err)
	}

	return days, nil
}
