package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservation_IsActive(t *testing.T) {
	for _, status := range []ReservationStatus{StatusReserved, StatusInProgress, StatusCompleted} {
		res := &Reservation{Status: status}
		assert.True(t, res.IsActive(), "status %s should occupy time", status)
	}

	canceled := &Reservation{Status: StatusCanceled}
	assert.False(t, canceled.IsActive())
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusReserved}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusInProgress}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCanceled}).CanBeCancelled())
}

func TestReservation_End(t *testing.T) {
	start := time.Date(2026, 9, 22, 1, 0, 0, 0, time.UTC)
	res := &Reservation{DateTime: start, TotalDurationMinutes: 90}
	assert.Equal(t, start.Add(90*time.Minute), res.End())
}

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusReserved, StatusInProgress, true},
		{StatusReserved, StatusCompleted, true},
		{StatusReserved, StatusCanceled, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCanceled, true},
		{StatusInProgress, StatusReserved, false},
		{StatusCompleted, StatusCanceled, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCanceled, StatusReserved, false},
		{StatusCanceled, StatusCompleted, false},
	}

	for _, tt := range tests {
		res := &Reservation{Status: tt.from}
		assert.Equal(t, tt.want, res.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestReservation_IsGuest(t *testing.T) {
	customerID := int64(7)
	assert.False(t, (&Reservation{CustomerID: &customerID}).IsGuest())
	assert.True(t, (&Reservation{}).IsGuest())
}
