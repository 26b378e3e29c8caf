package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDay(row rowScanner) (domain.InventoryDay, error) {
	var day domain.InventoryDay
	var price sql.NullFloat64

	if err := row.Scan(&day.RoomTypeID, &day.Date, &day.CapacityAvailable, &price, &day.Closed); err != nil {
		return domain.InventoryDay{}, err
	}

	day.Date = domain.Date(day.Date)

	if price.Valid {
		p := price.Float64
		day.Price = &p
	}

	return day, nil
}

func (r *InventoryRepository) GetDay(ctx context.Context, roomTypeID uuid.UUID, date time.Time) (*domain.InventoryDay, error) {
	query := `
	SELECT room_type_id, night, capacity_available, price, closed
	FROM inventory_days
	WHERE room_type_id = $1 AND night = $2
	`

	day, err := scanDay(conn(ctx, r.db).QueryRowContext(ctx, query, roomTypeID, domain.Date(date)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inventory day %s: %w", date.Format(domain.DateLayout), domain.ErrNotFound)
		}

		return nil, classify(err)
	}

	return &day, nil
}

func (r *InventoryRepository) GetRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error) {
	query := `
	SELECT room_type_id, night, capacity_available, price, closed
	FROM inventory_days
	WHERE room_type_id = $1 AND night >= $2 AND night < $3
	ORDER BY night
	`

	return r.queryDays(ctx, query, roomTypeID, domain.Date(from), domain.Date(to))
}

// LockRange takes row locks on every stored night in [from, to). Rows are locked in date order,
// so two allocations over overlapping ranges queue instead of deadlocking.
func (r *InventoryRepository) LockRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]domain.InventoryDay, error) {
	if !inTx(ctx) {
		return nil, errors.New("lock range outside transaction")
	}

	query := `
	SELECT room_type_id, night, capacity_available, price, closed
	FROM inventory_days
	WHERE room_type_id = $1 AND night >= $2 AND night < $3
	ORDER BY night
	FOR UPDATE
	`

	return r.queryDays(ctx, query, roomTypeID, domain.Date(from), domain.Date(to))
}

func (r *InventoryRepository) queryDays(ctx context.Context, query string, args ...any) ([]domain.InventoryDay, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}

	defer rows.Close()

	var days []domain.InventoryDay
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return days, nil
}

// SetDay upserts one night. The stored price survives when day.Price is nil; closed is never
// touched by seeding.
func (r *InventoryRepository) SetDay(ctx context.Context, day domain.InventoryDay) (bool, error) {
	query := `
	INSERT INTO inventory_days (room_type_id, night, capacity_available, price, closed)
	VALUES ($1, $2, $3, $4, FALSE)
	ON CONFLICT (room_type_id, night) DO UPDATE
	SET capacity_available = EXCLUDED.capacity_available,
		price = COALESCE(EXCLUDED.price, inventory_days.price)
	RETURNING (xmax = 0) AS inserted
	`

	var price sql.NullFloat64
	if day.Price != nil {
		price = sql.NullFloat64{Float64: *day.Price, Valid: true}
	}

	var inserted bool

	err := conn(ctx, r.db).QueryRowContext(ctx, query, day.RoomTypeID, domain.Date(day.Date), day.CapacityAvailable, price).Scan(&inserted)
	if err != nil {
		return false, classify(err)
	}

	return inserted, nil
}

func (r *InventoryRepository) SetClosed(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time, closed bool) (int, error) {
	query := `
	UPDATE inventory_days
	SET closed = $1
	WHERE room_type_id = $2 AND night >= $3 AND night < $4
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, closed, roomTypeID, domain.Date(from), domain.Date(to))
	if err != nil {
		return 0, classify(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

// Decrement only succeeds while the night is open and holds at least rooms units.
func (r *InventoryRepository) Decrement(ctx context.Context, roomTypeID uuid.UUID, date time.Time, rooms int) error {
	query := `
	UPDATE inventory_days
	SET capacity_available = capacity_available - $1
	WHERE room_type_id = $2 AND night = $3 AND closed = FALSE AND capacity_available >= $1
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, rooms, roomTypeID, domain.Date(date))
	if err != nil {
		return classify(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrInsufficientCapacity
	}

	return nil
}

func (r *InventoryRepository) Increment(ctx context.Context, roomTypeID uuid.UUID, date time.Time, rooms int) error {
	query := `
	UPDATE inventory_days
	SET capacity_available = capacity_available + $1
	WHERE room_type_id = $2 AND night = $3
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, rooms, roomTypeID, domain.Date(date))
	if err != nil {
		return classify(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("inventory day %s: %w", date.Format(domain.DateLayout), domain.ErrNotFound)
	}

	return nil
}
