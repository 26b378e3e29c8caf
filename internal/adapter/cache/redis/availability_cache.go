package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
)

// AvailabilityCache stores one key per query, each with its own TTL. Keys embed the room type's
// generation; Invalidate bumps the generation so older answers are never read again and expire
// on their own.
type AvailabilityCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *goredis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func GenerationKey(roomTypeID uuid.UUID) string {
	return fmt.Sprintf("availability:%s:generation", roomTypeID.String())
}

func EntryKey(key ports.AvailabilityKey, generation int64) string {
	return fmt.Sprintf("availability:%s:%d:%s", key.RoomTypeID.String(), generation, Field(key))
}

func Field(key ports.AvailabilityKey) string {
	return fmt.Sprintf("%s:%s:%d:%d",
		key.CheckIn.Format(domain.DateLayout),
		key.CheckOut.Format(domain.DateLayout),
		key.Rooms,
		key.Guests,
	)
}

func (c *AvailabilityCache) generation(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, GenerationKey(roomTypeID)).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}

		return 0, fmt.Errorf("read cache generation: %w", err)
	}

	return generation, nil
}

// Get returns nil without error on a miss.
func (c *AvailabilityCache) Get(ctx context.Context, key ports.AvailabilityKey) (*domain.Availability, error) {
	generation, err := c.generation(ctx, key.RoomTypeID)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, EntryKey(key, generation)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("read availability cache: %w", err)
	}

	var availability domain.Availability
	if err := json.Unmarshal([]byte(payload), &availability); err != nil {
		return nil, fmt.Errorf("decode cached availability: %w", err)
	}

	return &availability, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, key ports.AvailabilityKey, availability *domain.Availability) error {
	payload, err := json.Marshal(availability)
	if err != nil {
		return fmt.Errorf("encode availability: %w", err)
	}

	generation, err := c.generation(ctx, key.RoomTypeID)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, EntryKey(key, generation), string(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("write availability cache: %w", err)
	}

	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, roomTypeID uuid.UUID) error {
	if err := c.client.Incr(ctx, GenerationKey(roomTypeID)).Err(); err != nil {
		return fmt.Errorf("invalidate availability cache: %w", err)
	}

	return nil
}
