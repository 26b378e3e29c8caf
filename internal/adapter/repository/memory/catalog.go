package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type CatalogRepository struct {
	s *Store
}

func (s *Store) Catalog() *CatalogRepository {
	return &CatalogRepository{s: s}
}

// PutRoomType registers or replaces a room type. The catalog is owned elsewhere; this is how
// tests and the memory-backed server get one.
func (r *CatalogRepository) PutRoomType(roomType domain.RoomType) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.roomTypes[roomType.ID] = roomType
}

func (r *CatalogRepository) GetRoomType(_ context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	roomType, ok := r.s.roomTypes[roomTypeID]
	if !ok {
		return nil, fmt.Errorf("room type %s: %w", roomTypeID, domain.ErrNotFound)
	}

	return &roomType, nil
}

func (r *CatalogRepository) ListRoomTypes(_ context.Context, minGuests int) ([]domain.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var roomTypes []domain.RoomType

	for _, roomType := range r.s.roomTypes {
		if roomType.Bookable() && roomType.Fits(minGuests) {
			roomTypes = append(roomTypes, roomType)
		}
	}

	sort.Slice(roomTypes, func(i, j int) bool {
		if roomTypes[i].Name == roomTypes[j].Name {
			return roomTypes[i].ID.String() < roomTypes[j].ID.String()
		}

		return roomTypes[i].Name < roomTypes[j].Name
	})

	return roomTypes, nil
}
