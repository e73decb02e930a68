package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoursOf(t *testing.T) {
	tests := []struct {
		name          string
		startHour     int
		durationHours int
		expected      []int
	}{
		{
			name:          "two hour booking",
			startHour:     14,
			durationHours: 2,
			expected:      []int{14, 15},
		},
		{
			name:          "single hour",
			startHour:     0,
			durationHours: 1,
			expected:      []int{0},
		},
		{
			name:          "evening block",
			startHour:     18,
			durationHours: 4,
			expected:      []int{18, 19, 20, 21},
		},
		{
			name:          "zero duration",
			startHour:     10,
			durationHours: 0,
			expected:      []int{},
		},
		{
			name:          "negative duration",
			startHour:     10,
			durationHours: -3,
			expected:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HoursOf(tt.startHour, tt.durationHours))
		})
	}
}

func TestIsValidHour(t *testing.T) {
	assert.True(t, IsValidHour(0))
	assert.True(t, IsValidHour(12))
	assert.True(t, IsValidHour(23))
	assert.False(t, IsValidHour(-1))
	assert.False(t, IsValidHour(24))
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HourLabel(tt.hour))
	}
}
