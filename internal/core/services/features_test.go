package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/srgjo27/hotel_inventory/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

type reservationTestContext struct {
	store        *memory.Store
	roomType     domain.RoomType
	inventory    *services.InventoryService
	availability *services.AvailabilityService
	bookings     *services.BookingService
	stays        *services.StayService

	booking  *domain.Booking
	contract *domain.StayContract
	err      error
}

func (c *reservationTestContext) reset() {
	c.store = memory.New()
	c.booking = nil
	c.contract = nil
	c.err = nil
}

func (c *reservationTestContext) anActiveRoomTypeWithCapacityForGuests(guests int) error {
	c.roomType = domain.RoomType{
		ID:          uuid.New(),
		HotelID:     uuid.New(),
		Name:        "Double",
		CapacityMin: 1,
		CapacityMax: guests,
		Active:      true,
		HotelActive: true,
	}

	catalog := c.store.Catalog()
	catalog.PutRoomType(c.roomType)

	pricing := domain.PricingPolicy{DefaultNightPrice: 100}

	c.inventory = services.NewInventoryService(c.store, catalog, c.store.Inventory(), nil, nil, nil)
	c.availability = services.NewAvailabilityService(catalog, c.store.Inventory(), nil, pricing, nil)
	c.bookings = services.NewBookingService(c.store, catalog, c.store.Inventory(), c.store.Bookings(), c.store.Contracts(), nil, nil, pricing, nil)
	c.stays = services.NewStayService(c.store, c.store.Bookings(), c.store.Contracts(), nil, nil)

	return nil
}

// The last date is exclusive, matching a stay's check-out.
func (c *reservationTestContext) inventoryFromToWithRoomsAtPerNight(from, to string, rooms int, nightPrice float64) error {
	dateFrom, err := domain.ParseDate(from)
	if err != nil {
		return err
	}

	dateTo, err := domain.ParseDate(to)
	if err != nil {
		return err
	}

	_, err = c.inventory.SetAvailabilityRange(context.Background(), services.SetAvailabilityRangeRequest{
		RoomTypeID: c.roomType.ID,
		DateFrom:   dateFrom,
		DateTo:     dateTo.AddDate(0, 0, -1),
		Capacity:   rooms,
		Price:      &nightPrice,
	})

	return err
}

func (c *reservationTestContext) iBookRoomsFromTo(rooms int, from, to string) error {
	checkIn, err := domain.ParseDate(from)
	if err != nil {
		return err
	}

	checkOut, err := domain.ParseDate(to)
	if err != nil {
		return err
	}

	booking, err := c.bookings.CreateBooking(context.Background(), services.CreateBookingRequest{
		RoomTypeID: c.roomType.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      rooms,
		Guests:     1,
		Customer:   domain.Customer{Name: "Grace"},
	})

	c.err = err
	if err == nil {
		c.booking = booking
	}

	return nil
}

func (c *reservationTestContext) theBookingSucceedsWithTotalPrice(total float64) error {
	if c.err != nil {
		return fmt.Errorf("expected booking to succeed, got %v", c.err)
	}

	if c.booking.TotalPrice != total {
		return fmt.Errorf("expected total price %.2f, got %.2f", total, c.booking.TotalPrice)
	}

	return nil
}

func (c *reservationTestContext) theMinimumCapacityFromToIs(from, to string, want int) error {
	checkIn, err := domain.ParseDate(from)
	if err != nil {
		return err
	}

	checkOut, err := domain.ParseDate(to)
	if err != nil {
		return err
	}

	availability, err := c.availability.CheckAvailability(context.Background(), services.AvailabilityQuery{
		RoomTypeID: c.roomType.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      1,
	})
	if err != nil {
		return err
	}

	if availability.MinCapacity != want {
		return fmt.Errorf("expected min capacity %d, got %d", want, availability.MinCapacity)
	}

	return nil
}

func (c *reservationTestContext) theBookingIsRefusedForInsufficientAvailabilityOn(dates string) error {
	availabilityErr := domain.IsAvailabilityError(c.err)
	if availabilityErr == nil {
		return fmt.Errorf("expected insufficient availability, got %v", c.err)
	}

	if got := strings.Join(availabilityErr.DateStrings(), ", "); got != dates {
		return fmt.Errorf("expected unavailable dates %q, got %q", dates, got)
	}

	return nil
}

func (c *reservationTestContext) iCancelTheBooking() error {
	if c.booking == nil {
		return errors.New("no booking to cancel")
	}

	_, c.err = c.bookings.CancelBooking(context.Background(), c.booking.ID)

	return nil
}

func (c *reservationTestContext) cancellingTheBookingAgainFailsWith(msg string) error {
	_, c.err = c.bookings.CancelBooking(context.Background(), c.booking.ID)
	return c.theOperationFailsWith(msg)
}

func (c *reservationTestContext) theGuestChecksInToRoom(room string) error {
	contract, err := c.stays.CheckIn(context.Background(), c.booking.ID, room)
	if err != nil {
		return err
	}

	c.contract = contract

	return nil
}

func (c *reservationTestContext) theGuestChecksOut() error {
	_, c.err = c.stays.CheckOut(context.Background(), c.contract.ID)
	return c.err
}

func (c *reservationTestContext) checkingOutAgainFailsWith(msg string) error {
	_, c.err = c.stays.CheckOut(context.Background(), c.contract.ID)
	return c.theOperationFailsWith(msg)
}

func (c *reservationTestContext) theStayIs(state string) error {
	got, _, err := c.stays.StayState(context.Background(), c.booking.ID)
	if err != nil {
		return err
	}

	if string(got) != state {
		return fmt.Errorf("expected stay %s, got %s", state, got)
	}

	return nil
}

func (c *reservationTestContext) theOperationFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected operation to fail but it succeeded")
	}

	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.err.Error())
	}

	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &reservationTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an active room type with capacity for (\d+) guests$`, tc.anActiveRoomTypeWithCapacityForGuests)
	ctx.Step(`^inventory from "([^"]*)" to "([^"]*)" with (\d+) rooms at (\d+(?:\.\d+)?) per night$`, tc.inventoryFromToWithRoomsAtPerNight)
	ctx.Step(`^the guest checks in to room "([^"]*)"$`, tc.theGuestChecksInToRoom)
	// When steps
	ctx.Step(`^I book (\d+) rooms from "([^"]*)" to "([^"]*)"$`, tc.iBookRoomsFromTo)
	ctx.Step(`^I cancel the booking$`, tc.iCancelTheBooking)
	ctx.Step(`^the guest checks out$`, tc.theGuestChecksOut)
	// Then steps
	ctx.Step(`^the booking succeeds with total price (\d+(?:\.\d+)?)$`, tc.theBookingSucceedsWithTotalPrice)
	ctx.Step(`^the minimum capacity from "([^"]*)" to "([^"]*)" is (\d+)$`, tc.theMinimumCapacityFromToIs)
	ctx.Step(`^the booking is refused for insufficient availability on "([^"]*)"$`, tc.theBookingIsRefusedForInsufficientAvailabilityOn)
	ctx.Step(`^cancelling the booking again fails with "([^"]*)"$`, tc.cancellingTheBookingAgainFailsWith)
	ctx.Step(`^checking out again fails with "([^"]*)"$`, tc.checkingOutAgainFailsWith)
	ctx.Step(`^the stay is "([^"]*)"$`, tc.theStayIs)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/reservation.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
