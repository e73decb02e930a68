package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	ts := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	ds := NewDateString(ts)

	assert.Equal(t, "2026-03-15", ds.String())
}

func TestNewDateStringFromString(t *testing.T) {
	ds, err := NewDateStringFromString("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", ds.String())

	_, err = NewDateStringFromString("15.03.2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("2026-13-40")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateStringValidate(t *testing.T) {
	assert.NoError(t, DateString("2026-03-15").Validate())
	assert.ErrorIs(t, DateString("not-a-date").Validate(), ErrInvalidDateFormat)
	assert.ErrorIs(t, DateString("").Validate(), ErrInvalidDateFormat)
}

func TestDateStringTime(t *testing.T) {
	ds := DateString("2026-03-15")

	ts, err := ds.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), ts)
}

func TestDateStringDayBounds(t *testing.T) {
	ds := DateString("2026-03-15")

	start, end, err := ds.DayBounds()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), end)
}

func TestDateStringIsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2026-03-15").IsZero())
}
