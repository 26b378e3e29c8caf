package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

type errorResponse struct {
	Error            string              `json:"error"`
	Fields           map[string][]string `json:"fields,omitempty"`
	UnavailableDates []string            `json:"unavailable_dates,omitempty"`
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

func badRequest(w http.ResponseWriter, log *zap.Logger, field, msg string) {
	writeJSON(w, log, http.StatusBadRequest, errorResponse{
		Error:  "invalid input",
		Fields: map[string][]string{field: {msg}},
	})
}

// writeError maps domain failures onto HTTP statuses. Unknown errors are logged and hidden.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	if inputErr := domain.IsInputError(err); inputErr != nil {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid input", Fields: inputErr.Fields()})
		return
	}

	if availabilityErr := domain.IsAvailabilityError(err); availabilityErr != nil {
		writeJSON(w, log, http.StatusConflict, errorResponse{
			Error:            "insufficient availability",
			UnavailableDates: availabilityErr.DateStrings(),
		})
		return
	}

	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrAlreadyCheckedOut),
		errors.Is(err, domain.ErrNotCheckedIn),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrRoomOccupied),
		errors.Is(err, domain.ErrInsufficientCapacity):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrTransientStore):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		writeJSON(w, log, status, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, log, status, errorResponse{Error: err.Error()})
}

func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	return id, err == nil
}

// queryDates reads a pair of YYYY-MM-DD query parameters.
func queryDates(r *http.Request, fromKey, toKey string) (from, to time.Time, inputErr *domain.InputError) {
	inputErr = domain.NewInputError()

	parse := func(key string) time.Time {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			inputErr.Add(key, "provide "+key)
			return time.Time{}
		}

		t, err := domain.ParseDate(raw)
		if err != nil {
			inputErr.Add(key, "use YYYY-MM-DD")
		}

		return t
	}

	from, to = parse(fromKey), parse(toKey)

	return from, to, inputErr
}

func queryInt(r *http.Request, key string, fallback int, inputErr *domain.InputError) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		inputErr.Add(key, "must be an integer")
		return fallback
	}

	return n
}

// date decodes a YYYY-MM-DD JSON string.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := domain.ParseDate(raw)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

func decode(w http.ResponseWriter, r *http.Request, log *zap.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return false
	}

	return true
}
