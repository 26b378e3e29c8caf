package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

// CatalogRepository reads room types maintained by the catalog service.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const roomTypeSelect = `
	SELECT rt.id, rt.hotel_id, rt.name, rt.capacity_min, rt.capacity_max, rt.base_price, rt.active, h.active
	FROM room_types rt
	JOIN hotels h ON h.id = rt.hotel_id
	`

func scanRoomType(row rowScanner) (domain.RoomType, error) {
	var rt domain.RoomType

	err := row.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.CapacityMin, &rt.CapacityMax, &rt.BasePrice, &rt.Active, &rt.HotelActive)

	return rt, err
}

func (r *CatalogRepository) GetRoomType(ctx context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	query := roomTypeSelect + `WHERE rt.id = $1`

	rt, err := scanRoomType(conn(ctx, r.db).QueryRowContext(ctx, query, roomTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("room type %s: %w", roomTypeID, domain.ErrNotFound)
		}

		return nil, classify(err)
	}

	return &rt, nil
}

func (r *CatalogRepository) ListRoomTypes(ctx context.Context, minGuests int) ([]domain.RoomType, error) {
	query := roomTypeSelect + `WHERE rt.active AND h.active AND rt.capacity_max >= $1 ORDER BY rt.name, rt.id`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, minGuests)
	if err != nil {
		return nil, classify(err)
	}

	defer rows.Close()

	var roomTypes []domain.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}

		roomTypes = append(roomTypes, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return roomTypes, nil
}
