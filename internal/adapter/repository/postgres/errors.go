package postgres

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

const (
	uniqueContractBooking = "stay_contracts_booking_id_key"
	uniqueOpenRoom        = "stay_contracts_open_room_idx"
)

// classify tags lock waits, serialization failures and lost connections as transient so the
// caller can retry the same call. Other errors pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch {
	case pqErr.Code == "55P03", // lock_not_available
		pqErr.Code == "40001", // serialization_failure
		pqErr.Code == "40P01", // deadlock_detected
		pqErr.Code == "57014", // query_canceled
		pqErr.Code.Class() == "08":
		return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
	case pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == uniqueContractBooking:
		return fmt.Errorf("%w: %w", domain.ErrAlreadyCheckedIn, err)
	case pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == uniqueOpenRoom:
		return fmt.Errorf("%w: %w", domain.ErrRoomOccupied, err)
	}

	return err
}
