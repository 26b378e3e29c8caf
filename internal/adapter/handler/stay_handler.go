package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
)

type StayHandler struct {
	svc *services.StayService
	log *zap.Logger
}

func NewStayHandler(svc *services.StayService, log *zap.Logger) *StayHandler {
	return &StayHandler{svc: svc, log: log}
}

type checkInBody struct {
	RoomNumber string `json:"room_number"`
}

type stayStateResponse struct {
	State    domain.StayState     `json:"state"`
	Contract *domain.StayContract `json:"contract,omitempty"`
}

func (h *StayHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid booking id")
		return
	}

	var body checkInBody
	if !decode(w, r, h.log, &body) {
		return
	}

	contract, err := h.svc.CheckIn(r.Context(), bookingID, body.RoomNumber)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusCreated, contract)
}

func (h *StayHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid contract id")
		return
	}

	contract, err := h.svc.CheckOut(r.Context(), contractID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, contract)
}

func (h *StayHandler) StayState(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathUUID(r, "id")
	if !ok {
		badRequest(w, h.log, "id", "invalid booking id")
		return
	}

	state, contract, err := h.svc.StayState(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, stayStateResponse{State: state, Contract: contract})
}

func (h *StayHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListContracts(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, list)
}
