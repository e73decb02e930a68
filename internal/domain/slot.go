package domain

import "fmt"

// HoursOf returns the contiguous hour indices [startHour, startHour+durationHours)
// occupied by a booking.
func HoursOf(startHour, durationHours int) []int {
	if durationHours <= 0 {
		return []int{}
	}
	hours := make([]int, 0, durationHours)
	for h := startHour; h < startHour+durationHours; h++ {
		hours = append(hours, h)
	}
	return hours
}

// IsValidHour returns true for hour indices within a calendar day.
func IsValidHour(hour int) bool {
	return hour >= 0 && hour < HoursPerDay
}

// HourLabel formats an hour index for display: 0 -> "12 AM", 13 -> "1 PM".
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
