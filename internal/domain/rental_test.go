package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RentalStatus
		to   RentalStatus
		want bool
	}{
		{RentalStatusPending, RentalStatusActive, true},
		{RentalStatusPending, RentalStatusCancelled, true},
		{RentalStatusPending, RentalStatusCompleted, false},
		{RentalStatusActive, RentalStatusCompleted, true},
		// активную аренду нельзя отменить, только завершить возвратом
		{RentalStatusActive, RentalStatusCancelled, false},
		{RentalStatusActive, RentalStatusPending, false},
		{RentalStatusCompleted, RentalStatusActive, false},
		{RentalStatusCompleted, RentalStatusCancelled, false},
		{RentalStatusCancelled, RentalStatusPending, false},
		{RentalStatusCancelled, RentalStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRentalStatus_IsValid(t *testing.T) {
	assert.True(t, RentalStatusPending.IsValid())
	assert.True(t, RentalStatusActive.IsValid())
	assert.True(t, RentalStatusCompleted.IsValid())
	assert.True(t, RentalStatusCancelled.IsValid())
	assert.False(t, RentalStatus("UNKNOWN").IsValid())
	assert.False(t, RentalStatus("").IsValid())
}

func TestRental_PendingOnlyOperations(t *testing.T) {
	pending := &Rental{Status: RentalStatusPending}
	active := &Rental{Status: RentalStatusActive}
	completed := &Rental{Status: RentalStatusCompleted}

	assert.True(t, pending.CanBeCancelledByClient())
	assert.True(t, pending.CanBeDeleted())
	assert.True(t, pending.CanUpdateDates())

	assert.False(t, active.CanBeCancelledByClient())
	assert.False(t, active.CanBeDeleted())
	assert.False(t, active.CanUpdateDates())
	assert.True(t, active.IsActive())

	assert.False(t, completed.CanBeCancelledByClient())
	assert.False(t, completed.IsActive())
}
