package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports/mocks"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

func TestCheckIn_Success(t *testing.T) {
	bookings := mocks.NewBookingRepository(t)
	contracts := mocks.NewContractRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := services.NewStayService(passthroughTx(t), bookings, contracts, publisher, nil)

	ctx := context.Background()
	booking := &domain.Booking{ID: uuid.New(), HotelID: uuid.New(), RoomTypeID: uuid.New(), TotalPrice: 400, Status: domain.BookingActive}

	bookings.On("GetForUpdate", mock.Anything, booking.ID).Return(booking, nil)
	contracts.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, domain.ErrNotFound)
	contracts.On("FindOpenByRoom", mock.Anything, booking.HotelID, "101").Return(nil, domain.ErrNotFound)
	contracts.On("Create", mock.Anything, mock.AnythingOfType("*domain.StayContract")).Return(nil)
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventStayCheckedIn && e.BookingID == booking.ID
	})).Return(nil)

	contract, err := svc.CheckIn(ctx, booking.ID, " 101 ")

	require.NoError(t, err)
	assert.Equal(t, "101", contract.RoomNumber)
	assert.Equal(t, 400.0, contract.TotalAmount)
	assert.Equal(t, domain.StayInProgress, contract.State())
}

func TestCheckIn_RequiresRoomNumber(t *testing.T) {
	svc := services.NewStayService(passthroughTx(t), mocks.NewBookingRepository(t), mocks.NewContractRepository(t), nil, nil)

	_, err := svc.CheckIn(context.Background(), uuid.New(), "  ")

	assert.NotNil(t, domain.IsInputError(err))
}

func TestCheckIn_RoomOccupiedByOpenContract(t *testing.T) {
	bookings := mocks.NewBookingRepository(t)
	contracts := mocks.NewContractRepository(t)
	svc := services.NewStayService(passthroughTx(t), bookings, contracts, nil, nil)

	booking := &domain.Booking{ID: uuid.New(), HotelID: uuid.New(), Status: domain.BookingActive}

	bookings.On("GetForUpdate", mock.Anything, booking.ID).Return(booking, nil)
	contracts.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, domain.ErrNotFound)
	contracts.On("FindOpenByRoom", mock.Anything, booking.HotelID, "101").
		Return(&domain.StayContract{ID: uuid.New(), RoomNumber: "101", CheckedInAt: feb1}, nil)

	_, err := svc.CheckIn(context.Background(), booking.ID, "101")

	assert.ErrorIs(t, err, domain.ErrRoomOccupied)
	contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckOut_NotFound(t *testing.T) {
	contracts := mocks.NewContractRepository(t)
	svc := services.NewStayService(passthroughTx(t), mocks.NewBookingRepository(t), contracts, nil, nil)
	contractID := uuid.New()

	contracts.On("GetForUpdate", mock.Anything, contractID).Return(nil, domain.ErrNotFound)

	_, err := svc.CheckOut(context.Background(), contractID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStayState_UnknownBooking(t *testing.T) {
	bookings := mocks.NewBookingRepository(t)
	svc := services.NewStayService(passthroughTx(t), bookings, mocks.NewContractRepository(t), nil, nil)
	bookingID := uuid.New()

	bookings.On("GetByID", mock.Anything, bookingID).Return(nil, domain.ErrNotFound)

	_, _, err := svc.StayState(context.Background(), bookingID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListContracts_EmptyIsNotNil(t *testing.T) {
	contracts := mocks.NewContractRepository(t)
	svc := services.NewStayService(passthroughTx(t), mocks.NewBookingRepository(t), contracts, nil, nil)

	contracts.On("List", mock.Anything).Return(nil, nil)

	list, err := svc.ListContracts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.NotNil(t, list.Contracts)
	assert.Empty(t, list.Contracts)
}
