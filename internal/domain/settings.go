package domain

import "time"

// AppSettings is the global capacity configuration owned by an external
// settings store. The booking path only ever reads it.
type AppSettings struct {
	NumberOfRooms int
	UpdatedAt     time.Time
}

// Capacity returns the effective room capacity, never below one.
func (s *AppSettings) Capacity() int {
	if s == nil || s.NumberOfRooms < 1 {
		return DefaultNumberOfRooms
	}
	return s.NumberOfRooms
}
