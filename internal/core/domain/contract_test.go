package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStayContract_Lifecycle(t *testing.T) {
	var none *domain.StayContract
	assert.Equal(t, domain.StayPending, none.State())

	c := &domain.StayContract{ID: uuid.New(), RoomNumber: "101", CheckedInAt: time.Now()}
	assert.Equal(t, domain.StayInProgress, c.State())

	assert.NoError(t, c.CheckOut(time.Now()))
	assert.Equal(t, domain.StayFinalized, c.State())

	assert.ErrorIs(t, c.CheckOut(time.Now()), domain.ErrAlreadyCheckedOut)
}

func TestStayContract_CheckOutWithoutCheckIn(t *testing.T) {
	c := &domain.StayContract{ID: uuid.New()}

	assert.ErrorIs(t, c.CheckOut(time.Now()), domain.ErrNotCheckedIn)
}

func TestBooking_CancelTwice(t *testing.T) {
	b := &domain.Booking{Status: domain.BookingActive}
	at := time.Now()

	assert.NoError(t, b.Cancel(at))
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Equal(t, at, *b.CancelledAt)

	assert.ErrorIs(t, b.Cancel(at), domain.ErrAlreadyCancelled)
}
