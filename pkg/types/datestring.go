package types

import (
	"errors"
	"fmt"
	"time"
)

// DateString represents a calendar date in "YYYY-MM-DD" format.
// Used as the canonical key for per-date aggregates and as a wire format
// for booking dates. The zero value is the empty string.
type DateString string

const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat is returned when a string does not match YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// NewDateString creates a DateString from a time.Time, dropping the time part.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string.
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// Validate checks that the value matches the YYYY-MM-DD layout.
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// IsZero returns true for the empty value.
func (d DateString) IsZero() bool {
	return d == ""
}

// Time returns the date as a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// DayBounds returns the inclusive [startOfDay, endOfDay] pair for the date.
// endOfDay is the last representable instant before the next day.
func (d DateString) DayBounds() (time.Time, time.Time, error) {
	start, err := d.Time()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end, nil
}

// String returns the raw "YYYY-MM-DD" representation.
func (d DateString) String() string {
	return string(d)
}
