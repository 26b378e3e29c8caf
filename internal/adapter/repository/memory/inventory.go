package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type InventoryRepository struct {
	s *Store
}

func (s *Store) Inventory() *InventoryRepository {
	return &InventoryRepository{s: s}
}

func inventoryLockKey(roomTypeID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("inventory:%s:%s", roomTypeID, date.Format(domain.DateLayout))
}

func (r *InventoryRepository) GetDay(_ context.Context, roomTypeID uuid.UUID, date time.Time) (*domain.InventoryDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	day, ok := r.s.days[keyOf(roomTypeID, domain.Date(date).Format(domain.DateLayout))]
	if !ok {
		return nil, fmt.Errorf("inventory day %s: %w", date.Format(domain.DateLayout), domain.ErrNotFound)
	}

	return &day, nil
}

func (r *InventoryRepository) GetRange(_ context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(roomTypeID, from, to), nil
}

// LockRange locks each night in ascending date order so overlapping allocators cannot deadlock.
func (r *InventoryRepository) LockRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error) {
	for _, night := range domain.Nights(from, to) {
		if err := r.s.lock(ctx, inventoryLockKey(roomTypeID, night)); err != nil {
			return nil, err
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.collect(roomTypeID, from, to), nil
}

func (r *InventoryRepository) collect(roomTypeID uuid.UUID, from, to time.Time) []domain.InventoryDay {
	var days []domain.InventoryDay

	for _, night := range domain.Nights(from, to) {
		if day, ok := r.s.days[keyOf(roomTypeID, night.Format(domain.DateLayout))]; ok {
			days = append(days, day)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	return days
}

func (r *InventoryRepository) SetDay(ctx context.Context, day domain.InventoryDay) (bool, error) {
	if day.CapacityAvailable < 0 {
		return false, fmt.Errorf("capacity %d: %w", day.CapacityAvailable, domain.ErrInsufficientCapacity)
	}

	day.Date = domain.Date(day.Date)

	if err := r.s.lock(ctx, inventoryLockKey(day.RoomTypeID, day.Date)); err != nil {
		return false, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := keyOf(day.RoomTypeID, day.Date.Format(domain.DateLayout))

	existing, exists := r.s.days[key]
	if exists {
		if day.Price == nil {
			day.Price = existing.Price
		}

		day.Closed = existing.Closed
		r.s.onRollback(ctx, func() { r.s.days[key] = existing })
	} else {
		r.s.onRollback(ctx, func() { delete(r.s.days, key) })
	}

	r.s.days[key] = day

	return !exists, nil
}

func (r *InventoryRepository) SetClosed(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time, closed bool) (int, error) {
	if _, err := r.LockRange(ctx, roomTypeID, from, to); err != nil {
		return 0, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	touched := 0

	for _, night := range domain.Nights(from, to) {
		key := keyOf(roomTypeID, night.Format(domain.DateLayout))

		day, ok := r.s.days[key]
		if !ok {
			continue
		}

		previous := day
		r.s.onRollback(ctx, func() { r.s.days[key] = previous })

		day.Closed = closed
		r.s.days[key] = day
		touched++
	}

	return touched, nil
}

func (r *InventoryRepository) Decrement(ctx context.Context, roomTypeID uuid.UUID, date time.Time, rooms int) error {
	return r.adjust(ctx, roomTypeID, date, -rooms)
}

func (r *InventoryRepository) Increment(ctx context.Context, roomTypeID uuid.UUID, date time.Time, rooms int) error {
	return r.adjust(ctx, roomTypeID, date, rooms)
}

func (r *InventoryRepository) adjust(ctx context.Context, roomTypeID uuid.UUID, date time.Time, delta int) error {
	date = domain.Date(date)

	if err := r.s.lock(ctx, inventoryLockKey(roomTypeID, date)); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := keyOf(roomTypeID, date.Format(domain.DateLayout))

	day, ok := r.s.days[key]
	if !ok {
		if delta < 0 {
			return domain.ErrInsufficientCapacity
		}

		return fmt.Errorf("inventory day %s: %w", date.Format(domain.DateLayout), domain.ErrNotFound)
	}

	if delta < 0 && !day.Sellable(-delta) {
		return domain.ErrInsufficientCapacity
	}

	previous := day
	r.s.onRollback(ctx, func() { r.s.days[key] = previous })

	day.CapacityAvailable += delta
	r.s.days[key] = day

	return nil
}
