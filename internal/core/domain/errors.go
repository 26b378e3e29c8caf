package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidDateRange     = errors.New("invalid date range: check-out must be after check-in")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrAlreadyCancelled     = errors.New("booking already cancelled")
	ErrAlreadyCheckedIn     = errors.New("booking already checked in")
	ErrAlreadyCheckedOut    = errors.New("stay already checked out")
	ErrNotCheckedIn         = errors.New("stay not checked in")
	ErrBookingNotActive     = errors.New("booking is not active")
	ErrRoomOccupied         = errors.New("room is occupied")
	ErrTransientStore       = errors.New("transient store failure")
)

// AvailabilityError reports the nights that could not supply the requested rooms.
type AvailabilityError struct {
	RoomTypeID uuid.UUID
	Dates      []time.Time
}

func NewAvailabilityError(roomTypeID uuid.UUID, dates []time.Time) *AvailabilityError {
	sorted := append([]time.Time(nil), dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	return &AvailabilityError{RoomTypeID: roomTypeID, Dates: sorted}
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityErr *AvailabilityError
	if errors.As(err, &availabilityErr) {
		return availabilityErr
	}

	return nil
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("room type %s is unavailable on %s", e.RoomTypeID, strings.Join(e.DateStrings(), ", "))
}

func (e *AvailabilityError) DateStrings() []string {
	out := make([]string, 0, len(e.Dates))
	for _, d := range e.Dates {
		out = append(out, d.Format(DateLayout))
	}

	return out
}

type InputError struct {
	fields map[string][]string
}

func NewInputError() *InputError {
	return &InputError{fields: make(map[string][]string)}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr
	}

	return nil
}

func (e *InputError) Add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *InputError) Empty() bool {
	return len(e.fields) == 0
}

// OrNil lets validators return a typed-nil-free error.
func (e *InputError) OrNil() error {
	if e.Empty() {
		return nil
	}

	return e
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %+v", e.fields)
}

func (e *InputError) Fields() map[string][]string {
	return e.fields
}
