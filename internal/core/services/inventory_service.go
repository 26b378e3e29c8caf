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

type SetAvailabilityRangeRequest struct {
	RoomTypeID uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	Capacity   int
	Price      *float64
}

type SeedResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// InventoryService seeds and closes out calendar inventory.
type InventoryService struct {
	tx        ports.Transactor
	catalog   ports.CatalogRepository
	inventory ports.InventoryRepository
	notifier  *notifier
	log       *zap.Logger
}

func NewInventoryService(
	tx ports.Transactor,
	catalog ports.CatalogRepository,
	inventory ports.InventoryRepository,
	cache ports.AvailabilityCache,
	publisher ports.EventPublisher,
	log *zap.Logger,
) *InventoryService {
	log = orNop(log)

	return &InventoryService{
		tx:        tx,
		catalog:   catalog,
		inventory: inventory,
		notifier:  newNotifier(cache, publisher, log),
		log:       log,
	}
}

func (r SetAvailabilityRangeRequest) validate() error {
	inputErr := domain.NewInputError()

	if r.RoomTypeID == uuid.Nil {
		inputErr.Add("room_type_id", "provide room_type_id")
	}

	if r.Capacity < 0 {
		inputErr.Add("capacity", "capacity must not be negative")
	}

	if r.Price != nil && *r.Price < 0 {
		inputErr.Add("price", "price must not be negative")
	}

	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		inputErr.Add("dates", "provide date_from and date_to")
	} else if domain.Date(r.DateTo).Before(domain.Date(r.DateFrom)) {
		inputErr.Add("date_to", "date_to must not be before date_from")
	}

	return inputErr.OrNil()
}

// SetAvailabilityRange upserts one inventory day per date in [DateFrom, DateTo], both inclusive.
// A nil price keeps whatever price is already stored.
func (s *InventoryService) SetAvailabilityRange(ctx context.Context, req SetAvailabilityRangeRequest) (*SeedResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetRoomType(ctx, req.RoomTypeID); err != nil {
		return nil, fmt.Errorf("get room type %s: %w", req.RoomTypeID, err)
	}

	dates := domain.Nights(req.DateFrom, domain.Date(req.DateTo).AddDate(0, 0, 1))

	var result SeedResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		result = SeedResult{}

		for _, date := range dates {
			created, err := s.inventory.SetDay(ctx, domain.InventoryDay{
				RoomTypeID:        req.RoomTypeID,
				Date:              date,
				CapacityAvailable: req.Capacity,
				Price:             req.Price,
			})
			if err != nil {
				return fmt.Errorf("set inventory day %s: %w", date.Format(domain.DateLayout), err)
			}

			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("inventory range seeded",
		zap.String("room_type_id", req.RoomTypeID.String()),
		zap.String("from", req.DateFrom.Format(domain.DateLayout)),
		zap.String("to", req.DateTo.Format(domain.DateLayout)),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated))

	event := domain.NewEvent(domain.EventInventorySeeded, req.RoomTypeID, time.Now().UTC())
	event.Data = result
	s.notifier.committed(ctx, req.RoomTypeID, event)

	return &result, nil
}

// CloseRange toggles stop-sell on the stored days in [from, to). Days without a row stay absent.
func (s *InventoryService) CloseRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time, closed bool) (int, error) {
	if err := domain.ValidateRange(from, to); err != nil {
		return 0, err
	}

	if _, err := s.catalog.GetRoomType(ctx, roomTypeID); err != nil {
		return 0, fmt.Errorf("get room type %s: %w", roomTypeID, err)
	}

	var touched int

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error

		touched, err = s.inventory.SetClosed(ctx, roomTypeID, domain.Date(from), domain.Date(to), closed)
		if err != nil {
			return fmt.Errorf("set closed: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("inventory stop-sell updated",
		zap.String("room_type_id", roomTypeID.String()),
		zap.Bool("closed", closed),
		zap.Int("days", touched))

	s.notifier.invalidate(ctx, roomTypeID)

	return touched, nil
}
