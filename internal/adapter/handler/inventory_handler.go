package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

type InventoryHandler struct {
	inventory    *services.InventoryService
	availability *services.AvailabilityService
	log          *zap.Logger
}

func NewInventoryHandler(inventory *services.InventoryService, availability *services.AvailabilityService, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, availability: availability, log: log}
}

type calendarDay struct {
	Date              string   `json:"date"`
	CapacityAvailable int      `json:"capacity_available"`
	Price             *float64 `json:"price"`
	Closed            bool     `json:"closed"`
}

func (h *InventoryHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid room type id")
		return
	}

	checkIn, checkOut, inputErr := queryDates(r, "check_in", "check_out")
	rooms := queryInt(r, "rooms", 1, inputErr)
	guests := queryInt(r, "guests", 0, inputErr)

	if err := inputErr.OrNil(); err != nil {
		writeError(w, h.log, err)
		return
	}

	availability, err := h.availability.CheckAvailability(r.Context(), services.AvailabilityQuery{
		RoomTypeID: roomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      rooms,
		Guests:     guests,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, availability)
}

func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	checkIn, checkOut, inputErr := queryDates(r, "check_in", "check_out")
	rooms := queryInt(r, "rooms", 1, inputErr)
	guests := queryInt(r, "guests", 1, inputErr)

	if err := inputErr.OrNil(); err != nil {
		writeError(w, h.log, err)
		return
	}

	results, err := h.availability.Search(r.Context(), services.SearchQuery{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
		Guests:   guests,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, results)
}

func (h *InventoryHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid room type id")
		return
	}

	from, to, inputErr := queryDates(r, "from", "to")
	if err := inputErr.OrNil(); err != nil {
		writeError(w, h.log, err)
		return
	}

	days, err := h.availability.Calendar(r.Context(), roomTypeID, from, to)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	out := make([]calendarDay, 0, len(days))
	for _, day := range days {
		out = append(out, calendarDay{
			Date:              day.Date.Format(domain.DateLayout),
			CapacityAvailable: day.CapacityAvailable,
			Price:             day.Price,
			Closed:            day.Closed,
		})
	}

	writeJSON(w, h.log, http.StatusOK, out)
}

type setInventoryBody struct {
	DateFrom date     `json:"date_from"`
	DateTo   date     `json:"date_to"`
	Capacity *int     `json:"capacity"`
	Price    *float64 `json:"price"`
}

func (h *InventoryHandler) SetInventory(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid room type id")
		return
	}

	var body setInventoryBody
	if !decode(w, r, h.log, &body) {
		return
	}

	if body.Capacity == nil {
		badRequest(w, h.log, "capacity", "provide capacity")
		return
	}

	result, err := h.inventory.SetAvailabilityRange(r.Context(), services.SetAvailabilityRangeRequest{
		RoomTypeID: roomTypeID,
		DateFrom:   body.DateFrom.Time,
		DateTo:     body.DateTo.Time,
		Capacity:   *body.Capacity,
		Price:      body.Price,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}

type closeInventoryBody struct {
	From   date `json:"from"`
	To     date `json:"to"`
	Closed bool `json:"closed"`
}

func (h *InventoryHandler) CloseInventory(w http.ResponseWriter, r *http.Request) {
	roomTypeID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid room type id")
		return
	}

	var body closeInventoryBody
	if !decode(w, r, h.log, &body) {
		return
	}

	touched, err := h.inventory.CloseRange(r.Context(), roomTypeID, body.From.Time, body.To.Time, body.Closed)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]int{"days": touched})
}
