package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type ContractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `id, booking_id, hotel_id, room_number, total_amount, checked_in_at, checked_out_at`

func scanContract(row rowScanner) (domain.StayContract, error) {
	var contract domain.StayContract
	var checkedOutAt sql.NullTime

	err := row.Scan(
		&contract.ID,
		&contract.BookingID,
		&contract.HotelID,
		&contract.RoomNumber,
		&contract.TotalAmount,
		&contract.CheckedInAt,
		&checkedOutAt,
	)
	if err != nil {
		return domain.StayContract{}, err
	}

	if checkedOutAt.Valid {
		contract.CheckedOutAt = &checkedOutAt.Time
	}

	return contract, nil
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.StayContract) error {
	query := `
	INSERT INTO stay_contracts (` + contractColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		contract.ID,
		contract.BookingID,
		contract.HotelID,
		contract.RoomNumber,
		contract.TotalAmount,
		contract.CheckedInAt,
		contract.CheckedOutAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %w", classify(err))
	}

	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, contractID uuid.UUID) (*domain.StayContract, error) {
	query := `SELECT ` + contractColumns + ` FROM stay_contracts WHERE id = $1`

	return r.getOne(ctx, query, contractID)
}

func (r *ContractRepository) GetForUpdate(ctx context.Context, contractID uuid.UUID) (*domain.StayContract, error) {
	query := `SELECT ` + contractColumns + ` FROM stay_contracts WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, contractID)
}

func (r *ContractRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.StayContract, error) {
	query := `SELECT ` + contractColumns + ` FROM stay_contracts WHERE booking_id = $1`

	return r.getOne(ctx, query, bookingID)
}

func (r *ContractRepository) FindOpenByRoom(ctx context.Context, hotelID uuid.UUID, roomNumber string) (*domain.StayContract, error) {
	query := `
	SELECT ` + contractColumns + `
	FROM stay_contracts
	WHERE hotel_id = $1 AND room_number = $2 AND checked_out_at IS NULL
	LIMIT 1
	`

	return r.getOne(ctx, query, hotelID, roomNumber)
}

func (r *ContractRepository) getOne(ctx context.Context, query string, args ...any) (*domain.StayContract, error) {
	contract, err := scanContract(conn(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contract %v: %w", args[0], domain.ErrNotFound)
		}

		return nil, classify(err)
	}

	return &contract, nil
}

func (r *ContractRepository) UpdateCheckOut(ctx context.Context, contract *domain.StayContract) error {
	query := `
	UPDATE stay_contracts
	SET checked_out_at = $1
	WHERE id = $2
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, contract.CheckedOutAt, contract.ID)
	if err != nil {
		return classify(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("contract %s: %w", contract.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *ContractRepository) List(ctx context.Context) ([]domain.StayContract, error) {
	query := `SELECT ` + contractColumns + ` FROM stay_contracts ORDER BY checked_in_at DESC`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}

	defer rows.Close()

	var contracts []domain.StayContract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}

		contracts = append(contracts, contract)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return contracts, nil
}
