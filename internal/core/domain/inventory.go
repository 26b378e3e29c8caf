package domain

import (
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// InventoryDay is the sellable stock of one room type on one night.
type InventoryDay struct {
	RoomTypeID        uuid.UUID
	Date              time.Time
	CapacityAvailable int
	Price             *float64
	Closed            bool
}

func (d *InventoryDay) Sellable(rooms int) bool {
	return !d.Closed && d.CapacityAvailable >= rooms
}

// Date truncates t to midnight UTC of its calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Nights lists every night of the half-open stay [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) []time.Time {
	from, to := Date(checkIn), Date(checkOut)

	var nights []time.Time
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}

	return nights
}

func ValidateRange(checkIn, checkOut time.Time) error {
	if !Date(checkOut).After(Date(checkIn)) {
		return ErrInvalidDateRange
	}

	return nil
}

type PricingPolicy struct {
	DefaultNightPrice float64
}

func (p PricingPolicy) NightPrice(day *InventoryDay) float64 {
	if day.Price != nil {
		return *day.Price
	}

	return p.DefaultNightPrice
}

// RangeEvaluation is the outcome of checking every night of a stay against stored inventory.
type RangeEvaluation struct {
	MinCapacity      int
	TotalPrice       float64
	UnavailableDates []time.Time
}

func (e *RangeEvaluation) Available() bool {
	return len(e.UnavailableDates) == 0
}

// EvaluateRange checks each night in [checkIn, checkOut) for rooms sellable units.
// Missing days count as closed out. TotalPrice is the per-night sum times rooms.
func EvaluateRange(days []InventoryDay, checkIn, checkOut time.Time, rooms int, policy PricingPolicy) RangeEvaluation {
	byDate := make(map[time.Time]*InventoryDay, len(days))
	for i := range days {
		byDate[Date(days[i].Date)] = &days[i]
	}

	var eval RangeEvaluation

	first := true
	nightly := 0.0

	for _, night := range Nights(checkIn, checkOut) {
		day, ok := byDate[night]
		if !ok || !day.Sellable(rooms) {
			eval.UnavailableDates = append(eval.UnavailableDates, night)
			continue
		}

		if first || day.CapacityAvailable < eval.MinCapacity {
			eval.MinCapacity = day.CapacityAvailable
			first = false
		}

		nightly += policy.NightPrice(day)
	}

	if !eval.Available() {
		eval.MinCapacity = 0
		return eval
	}

	eval.TotalPrice = nightly * float64(rooms)

	return eval
}

// Availability answers an availability query. Shortfall is set when the range is not fully sellable.
type Availability struct {
	RoomTypeID  uuid.UUID  `json:"room_type_id"`
	HotelID     uuid.UUID  `json:"hotel_id"`
	RoomType    string     `json:"room_type,omitempty"`
	CapacityMax int        `json:"capacity_max,omitempty"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    time.Time  `json:"check_out"`
	Rooms       int        `json:"rooms"`
	MinCapacity int        `json:"min_capacity"`
	TotalPrice  float64    `json:"total_price"`
	Shortfall   *Shortfall `json:"shortfall,omitempty"`
}

type Shortfall struct {
	FirstUnavailableDate time.Time `json:"first_unavailable_date"`
}

func (a *Availability) Available() bool {
	return a.Shortfall == nil
}
