package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

func TestLedgerIncrement(t *testing.T) {
	ledger := NewAvailabilityLedger(types.DateString("2026-03-15"))

	ledger.Increment([]int{14, 15, 16})
	ledger.Increment([]int{15, 16})

	assert.Equal(t, 1, ledger.OccupancyAt(14))
	assert.Equal(t, 2, ledger.OccupancyAt(15))
	assert.Equal(t, 2, ledger.OccupancyAt(16))
	assert.Equal(t, 0, ledger.OccupancyAt(17))
}

func TestLedgerIncrementNilSlots(t *testing.T) {
	ledger := &AvailabilityLedger{Date: types.DateString("2026-03-15")}

	ledger.Increment([]int{10})

	assert.Equal(t, 1, ledger.OccupancyAt(10))
}

func TestLedgerDecrement(t *testing.T) {
	ledger := NewAvailabilityLedger(types.DateString("2026-03-15"))
	ledger.Increment([]int{14, 15})
	ledger.Increment([]int{14})

	ledger.Decrement([]int{14, 15})

	assert.Equal(t, 1, ledger.OccupancyAt(14))
	assert.Equal(t, 0, ledger.OccupancyAt(15))
	// Часы с нулевой занятостью удаляются из карты
	_, ok := ledger.Slots[15]
	assert.False(t, ok)
}

func TestLedgerDecrementFloorsAtZero(t *testing.T) {
	ledger := NewAvailabilityLedger(types.DateString("2026-03-15"))

	ledger.Decrement([]int{9})

	assert.Equal(t, 0, ledger.OccupancyAt(9))
}

func TestLedgerIsFull(t *testing.T) {
	ledger := NewAvailabilityLedger(types.DateString("2026-03-15"))
	ledger.Increment([]int{14})

	assert.True(t, ledger.IsFull(14, 1))
	assert.False(t, ledger.IsFull(14, 2))
	assert.False(t, ledger.IsFull(15, 1))
}

func TestLedgerFullyBookedHours(t *testing.T) {
	ledger := NewAvailabilityLedger(types.DateString("2026-03-15"))
	ledger.Increment([]int{20, 9, 14})
	ledger.Increment([]int{20})

	assert.Equal(t, []int{9, 14, 20}, ledger.FullyBookedHours(1))
	assert.Equal(t, []int{20}, ledger.FullyBookedHours(2))
	assert.Empty(t, ledger.FullyBookedHours(3))
}

func TestLedgerTotalBookings(t *testing.T) {
	ledger := NewAvailabilityLedger(types.DateString("2026-03-15"))
	assert.Equal(t, 0, ledger.TotalBookings())

	ledger.Increment([]int{14, 15, 16})
	ledger.Increment([]int{14})

	assert.Equal(t, 4, ledger.TotalBookings())
}
