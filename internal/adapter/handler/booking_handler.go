package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
	log *zap.Logger
}

func NewBookingHandler(svc *services.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

type createBookingBody struct {
	RoomTypeID uuid.UUID       `json:"room_type_id"`
	CheckIn    date            `json:"check_in"`
	CheckOut   date            `json:"check_out"`
	Rooms      int             `json:"rooms"`
	Guests     int             `json:"guests"`
	Customer   domain.Customer `json:"customer"`
	Notes      string          `json:"notes"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body createBookingBody
	if !decode(w, r, h.log, &body) {
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), services.CreateBookingRequest{
		RoomTypeID: body.RoomTypeID,
		CheckIn:    body.CheckIn.Time,
		CheckOut:   body.CheckOut.Time,
		Rooms:      body.Rooms,
		Guests:     body.Guests,
		Customer:   body.Customer,
		Notes:      body.Notes,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusCreated, booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid booking id")
		return
	}

	booking, err := h.svc.GetBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, booking)
}

func (h *BookingHandler) GetBookingByLocator(w http.ResponseWriter, r *http.Request) {
	booking, err := h.svc.GetBookingByLocator(r.Context(), mux.Vars(r)["locator"])
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid booking id")
		return
	}

	booking, err := h.svc.CancelBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, booking)
}
