package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

func price(p float64) *float64 {
	return &p
}

func TestNights_HalfOpenRange(t *testing.T) {
	nights := domain.Nights(day("2026-02-01"), day("2026-02-03"))

	require.Len(t, nights, 2)
	assert.Equal(t, day("2026-02-01"), nights[0])
	assert.Equal(t, day("2026-02-02"), nights[1])
}

func TestNights_AcrossMonthBoundary(t *testing.T) {
	nights := domain.Nights(day("2026-02-27"), day("2026-03-02"))

	assert.Len(t, nights, 3)
	assert.Equal(t, day("2026-03-01"), nights[2])
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, domain.ValidateRange(day("2026-02-01"), day("2026-02-02")))
	assert.ErrorIs(t, domain.ValidateRange(day("2026-02-02"), day("2026-02-02")), domain.ErrInvalidDateRange)
	assert.ErrorIs(t, domain.ValidateRange(day("2026-02-03"), day("2026-02-02")), domain.ErrInvalidDateRange)
}

func TestDate_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2026, 2, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), domain.Date(in))
}

func TestEvaluateRange_Available(t *testing.T) {
	rt := uuid.New()
	days := []domain.InventoryDay{
		{RoomTypeID: rt, Date: day("2026-02-01"), CapacityAvailable: 5, Price: price(100)},
		{RoomTypeID: rt, Date: day("2026-02-02"), CapacityAvailable: 3, Price: price(120)},
	}

	eval := domain.EvaluateRange(days, day("2026-02-01"), day("2026-02-03"), 2, domain.PricingPolicy{DefaultNightPrice: 100})

	assert.True(t, eval.Available())
	assert.Equal(t, 3, eval.MinCapacity)
	assert.Equal(t, 440.0, eval.TotalPrice)
}

func TestEvaluateRange_DefaultPriceForUnpricedNight(t *testing.T) {
	rt := uuid.New()
	days := []domain.InventoryDay{
		{RoomTypeID: rt, Date: day("2026-02-01"), CapacityAvailable: 5},
		{RoomTypeID: rt, Date: day("2026-02-02"), CapacityAvailable: 5, Price: price(80)},
	}

	eval := domain.EvaluateRange(days, day("2026-02-01"), day("2026-02-03"), 1, domain.PricingPolicy{DefaultNightPrice: 100})

	assert.Equal(t, 180.0, eval.TotalPrice)
}

func TestEvaluateRange_MissingClosedAndShortNights(t *testing.T) {
	rt := uuid.New()
	days := []domain.InventoryDay{
		{RoomTypeID: rt, Date: day("2026-02-01"), CapacityAvailable: 5},
		{RoomTypeID: rt, Date: day("2026-02-02"), CapacityAvailable: 5, Closed: true},
		{RoomTypeID: rt, Date: day("2026-02-04"), CapacityAvailable: 1},
	}

	eval := domain.EvaluateRange(days, day("2026-02-01"), day("2026-02-05"), 2, domain.PricingPolicy{DefaultNightPrice: 100})

	assert.False(t, eval.Available())
	assert.Equal(t, []time.Time{day("2026-02-02"), day("2026-02-03"), day("2026-02-04")}, eval.UnavailableDates)
	assert.Zero(t, eval.MinCapacity)
	assert.Zero(t, eval.TotalPrice)
}

func TestAvailabilityError_SortsDates(t *testing.T) {
	err := domain.NewAvailabilityError(uuid.New(), []time.Time{day("2026-02-03"), day("2026-02-01")})

	assert.Equal(t, []string{"2026-02-01", "2026-02-03"}, err.DateStrings())
	assert.Same(t, err, domain.IsAvailabilityError(err))
	assert.Contains(t, err.Error(), "2026-02-01, 2026-02-03")
}

func TestInputError_OrNil(t *testing.T) {
	inputErr := domain.NewInputError()
	assert.NoError(t, inputErr.OrNil())

	inputErr.Add("rooms", "must be at least 1")
	err := inputErr.OrNil()

	require.Error(t, err)
	assert.Equal(t, []string{"must be at least 1"}, domain.IsInputError(err).Fields()["rooms"])
}
