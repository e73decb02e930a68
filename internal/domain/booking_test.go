package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingHasValidHours(t *testing.T) {
	assert.True(t, (&Booking{StartHour: 14, DurationHours: 2}).HasValidHours())
	assert.True(t, (&Booking{StartHour: 22, DurationHours: 2}).HasValidHours())

	// Легаси-записи без часовых границ
	assert.False(t, (&Booking{StartHour: -1, DurationHours: 0}).HasValidHours())
	assert.False(t, (&Booking{StartHour: 14, DurationHours: 0}).HasValidHours())
	// Выход за границу суток
	assert.False(t, (&Booking{StartHour: 23, DurationHours: 2}).HasValidHours())
}

func TestBookingHours(t *testing.T) {
	b := &Booking{StartHour: 10, DurationHours: 3}
	assert.Equal(t, []int{10, 11, 12}, b.Hours())
}

func TestBookingOccupiesSlots(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).OccupiesSlots())
	assert.True(t, (&Booking{Status: StatusConfirmed}).OccupiesSlots())
	assert.True(t, (&Booking{Status: StatusCompleted}).OccupiesSlots())
	assert.False(t, (&Booking{Status: StatusCancelled}).OccupiesSlots())
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(BookingStatus("unknown")))
}
