package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// AvailabilityLedger is the per-date occupancy aggregate: for every hour
// with at least one active booking it stores the number of concurrent
// bookings occupying that hour. Hours absent from Slots have zero occupancy.
//
// Capacity is global: one shared pool of rooms across all venues, so the
// ledger is keyed by date alone. The invariant Slots[h] <= numberOfRooms
// is enforced by the booking transaction, never by storage.
type AvailabilityLedger struct {
	Date        types.DateString
	Slots       map[int]int
	LastUpdated time.Time
}

// NewAvailabilityLedger creates an empty ledger for the given date.
func NewAvailabilityLedger(date types.DateString) *AvailabilityLedger {
	return &AvailabilityLedger{
		Date:  date,
		Slots: make(map[int]int),
	}
}

// OccupancyAt returns the occupancy count for an hour (0 when absent).
func (l *AvailabilityLedger) OccupancyAt(hour int) int {
	return l.Slots[hour]
}

// IsFull returns true if the hour has reached the given capacity.
func (l *AvailabilityLedger) IsFull(hour, capacity int) bool {
	return l.OccupancyAt(hour) >= capacity
}

// Increment raises occupancy by one for every given hour.
func (l *AvailabilityLedger) Increment(hours []int) {
	if l.Slots == nil {
		l.Slots = make(map[int]int)
	}
	for _, h := range hours {
		l.Slots[h]++
	}
}

// Decrement lowers occupancy by one for every given hour, floored at zero.
// Hours that drop to zero are removed so absence keeps meaning zero.
func (l *AvailabilityLedger) Decrement(hours []int) {
	for _, h := range hours {
		if l.Slots[h] <= 1 {
			delete(l.Slots, h)
			continue
		}
		l.Slots[h]--
	}
}

// FullyBookedHours returns the sorted hours whose occupancy has reached capacity.
func (l *AvailabilityLedger) FullyBookedHours(capacity int) []int {
	full := make([]int, 0)
	for h := 0; h < HoursPerDay; h++ {
		if count, ok := l.Slots[h]; ok && count >= capacity {
			full = append(full, h)
		}
	}
	return full
}

// TotalBookings returns the sum of all hour occupancy counts.
func (l *AvailabilityLedger) TotalBookings() int {
	total := 0
	for _, count := range l.Slots {
		total += count
	}
	return total
}
