package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/srgjo27/hotel_inventory/internal/adapter/cache/redis"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

func testKey() ports.AvailabilityKey {
	return ports.AvailabilityKey{
		RoomTypeID: uuid.New(),
		CheckIn:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		Rooms:      2,
		Guests:     3,
	}
}

func TestAvailabilityCache_Field(t *testing.T) {
	assert.Equal(t, "2026-02-01:2026-02-03:2:3", cache.Field(testKey()))
}

func TestAvailabilityCache_EntryKey(t *testing.T) {
	key := testKey()

	assert.Equal(t, "availability:"+key.RoomTypeID.String()+":4:2026-02-01:2026-02-03:2:3", cache.EntryKey(key, 4))
	assert.Equal(t, "availability:"+key.RoomTypeID.String()+":generation", cache.GenerationKey(key.RoomTypeID))
}

func TestAvailabilityCache_GetMiss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)
	key := testKey()

	mockRedis.ExpectGet(cache.GenerationKey(key.RoomTypeID)).RedisNil()
	mockRedis.ExpectGet(cache.EntryKey(key, 0)).RedisNil()

	availability, err := c.Get(context.Background(), key)

	assert.NoError(t, err)
	assert.Nil(t, availability)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestAvailabilityCache_GetHit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)
	key := testKey()

	stored := domain.Availability{
		RoomTypeID:  key.RoomTypeID,
		CheckIn:     key.CheckIn,
		CheckOut:    key.CheckOut,
		Rooms:       2,
		MinCapacity: 3,
		TotalPrice:  400,
	}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	mockRedis.ExpectGet(cache.GenerationKey(key.RoomTypeID)).SetVal("2")
	mockRedis.ExpectGet(cache.EntryKey(key, 2)).SetVal(string(payload))

	availability, err := c.Get(context.Background(), key)

	require.NoError(t, err)
	require.NotNil(t, availability)
	assert.Equal(t, 3, availability.MinCapacity)
	assert.Equal(t, 400.0, availability.TotalPrice)
	assert.True(t, availability.CheckIn.Equal(key.CheckIn))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestAvailabilityCache_GetError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)
	key := testKey()

	mockRedis.ExpectGet(cache.GenerationKey(key.RoomTypeID)).SetVal("0")
	mockRedis.ExpectGet(cache.EntryKey(key, 0)).SetErr(errors.New("connection refused"))

	_, err := c.Get(context.Background(), key)

	assert.Error(t, err)
}

func TestAvailabilityCache_GenerationError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)
	key := testKey()

	mockRedis.ExpectGet(cache.GenerationKey(key.RoomTypeID)).SetErr(errors.New("connection refused"))

	_, err := c.Get(context.Background(), key)

	assert.Error(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestAvailabilityCache_Set(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, 30*time.Second)
	key := testKey()

	availability := &domain.Availability{RoomTypeID: key.RoomTypeID, Rooms: 2, MinCapacity: 3, TotalPrice: 400}
	payload, err := json.Marshal(availability)
	require.NoError(t, err)

	mockRedis.ExpectGet(cache.GenerationKey(key.RoomTypeID)).SetVal("1")
	mockRedis.ExpectSet(cache.EntryKey(key, 1), string(payload), 30*time.Second).SetVal("OK")

	assert.NoError(t, c.Set(context.Background(), key, availability))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

// Each answer carries its own expiry: caching another query for the room type writes only
// that query's key and never extends an earlier entry.
func TestAvailabilityCache_SetDoesNotExtendOtherEntries(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, 30*time.Second)
	first := testKey()
	second := first
	second.Rooms = 1

	availability := &domain.Availability{RoomTypeID: first.RoomTypeID, MinCapacity: 5}
	payload, err := json.Marshal(availability)
	require.NoError(t, err)

	mockRedis.ExpectGet(cache.GenerationKey(first.RoomTypeID)).RedisNil()
	mockRedis.ExpectSet(cache.EntryKey(first, 0), string(payload), 30*time.Second).SetVal("OK")

	for i := 0; i < 10; i++ {
		mockRedis.ExpectGet(cache.GenerationKey(second.RoomTypeID)).RedisNil()
		mockRedis.ExpectSet(cache.EntryKey(second, 0), string(payload), 30*time.Second).SetVal("OK")
	}

	require.NoError(t, c.Set(context.Background(), first, availability))
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Set(context.Background(), second, availability))
	}

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)
	roomTypeID := uuid.New()

	mockRedis.ExpectIncr(cache.GenerationKey(roomTypeID)).SetVal(1)

	assert.NoError(t, c.Invalidate(context.Background(), roomTypeID))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

// An answer written before invalidation lives under the old generation and is not read again.
func TestAvailabilityCache_MissAfterInvalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)
	key := testKey()

	mockRedis.ExpectIncr(cache.GenerationKey(key.RoomTypeID)).SetVal(1)
	mockRedis.ExpectGet(cache.GenerationKey(key.RoomTypeID)).SetVal("1")
	mockRedis.ExpectGet(cache.EntryKey(key, 1)).RedisNil()

	require.NoError(t, c.Invalidate(context.Background(), key.RoomTypeID))

	availability, err := c.Get(context.Background(), key)

	assert.NoError(t, err)
	assert.Nil(t, availability)
	assert.NotEqual(t, cache.EntryKey(key, 0), cache.EntryKey(key, 1))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
