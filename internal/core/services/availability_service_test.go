package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
	"github.com/srgjo27/hotel_inventory/internal/core/ports/mocks"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

func TestCheckAvailability_MissThenStore(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	inventory := mocks.NewInventoryRepository(t)
	cache := mocks.NewAvailabilityCache(t)
	svc := services.NewAvailabilityService(catalog, inventory, cache, domain.PricingPolicy{DefaultNightPrice: 100}, nil)

	ctx := context.Background()
	rt := activeRoomType()
	key := ports.AvailabilityKey{RoomTypeID: rt.ID, CheckIn: feb1, CheckOut: feb3, Rooms: 2, Guests: 2}

	cache.On("Get", ctx, key).Return(nil, nil)
	catalog.On("GetRoomType", ctx, rt.ID).Return(rt, nil)
	inventory.On("GetRange", ctx, rt.ID, feb1, feb3).Return([]domain.InventoryDay{
		{RoomTypeID: rt.ID, Date: feb1, CapacityAvailable: 5},
		{RoomTypeID: rt.ID, Date: feb2, CapacityAvailable: 3, Price: price(150)},
	}, nil)
	cache.On("Set", ctx, key, mock.AnythingOfType("*domain.Availability")).Return(nil)

	availability, err := svc.CheckAvailability(ctx, services.AvailabilityQuery{
		RoomTypeID: rt.ID, CheckIn: feb1, CheckOut: feb3, Rooms: 2, Guests: 2,
	})

	require.NoError(t, err)
	assert.True(t, availability.Available())
	assert.Equal(t, 3, availability.MinCapacity)
	assert.Equal(t, 500.0, availability.TotalPrice)
}

func TestCheckAvailability_CacheHit(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	inventory := mocks.NewInventoryRepository(t)
	cache := mocks.NewAvailabilityCache(t)
	svc := services.NewAvailabilityService(catalog, inventory, cache, domain.PricingPolicy{}, nil)

	ctx := context.Background()
	rt := activeRoomType()
	cached := &domain.Availability{RoomTypeID: rt.ID, MinCapacity: 4, TotalPrice: 200}

	cache.On("Get", ctx, mock.Anything).Return(cached, nil)

	availability, err := svc.CheckAvailability(ctx, services.AvailabilityQuery{RoomTypeID: rt.ID, CheckIn: feb1, CheckOut: feb3, Rooms: 1})

	require.NoError(t, err)
	assert.Same(t, cached, availability)
}

func TestCheckAvailability_CacheErrorFallsBackToStore(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	inventory := mocks.NewInventoryRepository(t)
	cache := mocks.NewAvailabilityCache(t)
	svc := services.NewAvailabilityService(catalog, inventory, cache, domain.PricingPolicy{DefaultNightPrice: 100}, nil)

	ctx := context.Background()
	rt := activeRoomType()

	cache.On("Get", ctx, mock.Anything).Return(nil, errors.New("redis down"))
	catalog.On("GetRoomType", ctx, rt.ID).Return(rt, nil)
	inventory.On("GetRange", ctx, rt.ID, feb1, feb3).Return([]domain.InventoryDay{
		{RoomTypeID: rt.ID, Date: feb1, CapacityAvailable: 1},
	}, nil)
	cache.On("Set", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	availability, err := svc.CheckAvailability(ctx, services.AvailabilityQuery{RoomTypeID: rt.ID, CheckIn: feb1, CheckOut: feb3, Rooms: 1})

	require.NoError(t, err)
	require.NotNil(t, availability.Shortfall)
	assert.Equal(t, feb2, availability.Shortfall.FirstUnavailableDate)
	assert.Zero(t, availability.TotalPrice)
}

func TestCheckAvailability_TooManyGuests(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	inventory := mocks.NewInventoryRepository(t)
	svc := services.NewAvailabilityService(catalog, inventory, nil, domain.PricingPolicy{}, nil)

	ctx := context.Background()
	rt := activeRoomType()

	catalog.On("GetRoomType", ctx, rt.ID).Return(rt, nil)

	availability, err := svc.CheckAvailability(ctx, services.AvailabilityQuery{
		RoomTypeID: rt.ID, CheckIn: feb1, CheckOut: feb3, Rooms: 1, Guests: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, availability.Shortfall)
	assert.Equal(t, feb1, availability.Shortfall.FirstUnavailableDate)
	inventory.AssertNotCalled(t, "GetRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAvailability_InvalidInput(t *testing.T) {
	svc := services.NewAvailabilityService(mocks.NewCatalogRepository(t), mocks.NewInventoryRepository(t), nil, domain.PricingPolicy{}, nil)
	rt := activeRoomType()

	_, err := svc.CheckAvailability(context.Background(), services.AvailabilityQuery{RoomTypeID: rt.ID, CheckIn: feb3, CheckOut: feb1, Rooms: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.CheckAvailability(context.Background(), services.AvailabilityQuery{RoomTypeID: rt.ID, CheckIn: feb1, CheckOut: feb3})
	assert.NotNil(t, domain.IsInputError(err))
}

func TestSearch_FiltersUnavailable(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	inventory := mocks.NewInventoryRepository(t)
	svc := services.NewAvailabilityService(catalog, inventory, nil, domain.PricingPolicy{DefaultNightPrice: 100}, nil)

	ctx := context.Background()
	open, full := activeRoomType(), activeRoomType()
	open.Name, full.Name = "Double", "Suite"

	catalog.On("ListRoomTypes", ctx, 2).Return([]domain.RoomType{*open, *full}, nil)
	inventory.On("GetRange", ctx, open.ID, feb1, feb3).Return([]domain.InventoryDay{
		{RoomTypeID: open.ID, Date: feb1, CapacityAvailable: 2},
		{RoomTypeID: open.ID, Date: feb2, CapacityAvailable: 2},
	}, nil)
	inventory.On("GetRange", ctx, full.ID, feb1, feb3).Return([]domain.InventoryDay{
		{RoomTypeID: full.ID, Date: feb1, CapacityAvailable: 0},
		{RoomTypeID: full.ID, Date: feb2, CapacityAvailable: 2},
	}, nil)

	results, err := svc.Search(ctx, services.SearchQuery{CheckIn: feb1, CheckOut: feb3, Rooms: 1, Guests: 2})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, open.ID, results[0].RoomTypeID)
	assert.Equal(t, 200.0, results[0].TotalPrice)
}

func TestCalendar_UnknownRoomType(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	svc := services.NewAvailabilityService(catalog, mocks.NewInventoryRepository(t), nil, domain.PricingPolicy{}, nil)
	rt := activeRoomType()

	catalog.On("GetRoomType", mock.Anything, rt.ID).Return(nil, domain.ErrNotFound)

	_, err := svc.Calendar(context.Background(), rt.ID, feb1, feb3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
