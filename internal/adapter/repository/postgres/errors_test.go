package postgres

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/srgjo27/hotel_inventory/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "lock timeout", err: &pq.Error{Code: "55P03"}, want: domain.ErrTransientStore},
		{name: "serialization", err: &pq.Error{Code: "40001"}, want: domain.ErrTransientStore},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, want: domain.ErrTransientStore},
		{name: "connection", err: &pq.Error{Code: "08006"}, want: domain.ErrTransientStore},
		{name: "bad conn", err: fmt.Errorf("query: %w", driver.ErrBadConn), want: domain.ErrTransientStore},
		{name: "duplicate check-in", err: &pq.Error{Code: "23505", Constraint: uniqueContractBooking}, want: domain.ErrAlreadyCheckedIn},
		{name: "occupied room", err: &pq.Error{Code: "23505", Constraint: uniqueOpenRoom}, want: domain.ErrRoomOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.want)
		})
	}
}

func TestClassify_PassesThrough(t *testing.T) {
	assert.Nil(t, classify(nil))

	plain := errors.New("syntax")
	assert.Equal(t, plain, classify(plain))

	other := &pq.Error{Code: "23503"}
	assert.False(t, errors.Is(classify(other), domain.ErrTransientStore))
}
