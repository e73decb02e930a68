package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, _, _ types.DateString) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeLedgerRepo struct {
	stored map[types.DateString]*domain.AvailabilityLedger
	setErr error
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{stored: make(map[types.DateString]*domain.AvailabilityLedger)}
}

func (f *fakeLedgerRepo) Get(_ context.Context, date types.DateString) (*domain.AvailabilityLedger, error) {
	ledger, ok := f.stored[date]
	if !ok {
		return nil, errors.New("not found")
	}
	return ledger, nil
}

func (f *fakeLedgerRepo) Set(_ context.Context, date types.DateString, ledger *domain.AvailabilityLedger) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored[date] = ledger
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testDate = types.DateString("2026-03-15")

func activeBooking(id int64, venueID int64, startHour, durationHours int) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		VenueID:       venueID,
		BookingDate:   testDate,
		StartHour:     startHour,
		EndHour:       startHour + durationHours,
		DurationHours: durationHours,
		Status:        domain.StatusConfirmed,
	}
}

func TestRebuildAggregatesAcrossVenues(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		activeBooking(1, 10, 14, 2), // 14, 15
		activeBooking(2, 20, 15, 3), // 15, 16, 17
	}}
	ledgerRepo := newFakeLedgerRepo()

	rebuilder := NewRebuilder(bookingRepo, ledgerRepo, nopLogger{})

	ledger, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{14: 1, 15: 2, 16: 1, 17: 1}, ledger.Slots)
	assert.Equal(t, ledger, ledgerRepo.stored[testDate], "rebuilt ledger must be persisted")
}

func TestRebuildSkipsCancelled(t *testing.T) {
	cancelled := activeBooking(2, 10, 14, 2)
	cancelled.Status = domain.StatusCancelled

	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		activeBooking(1, 10, 14, 2),
		cancelled,
	}}
	rebuilder := NewRebuilder(bookingRepo, newFakeLedgerRepo(), nopLogger{})

	ledger, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{14: 1, 15: 1}, ledger.Slots)
}

func TestRebuildSkipsLegacyWithoutHours(t *testing.T) {
	legacy := &domain.Booking{
		ID:          3,
		BookingDate: testDate,
		StartHour:   -1,
		EndHour:     -1,
		Status:      domain.StatusConfirmed,
	}

	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		activeBooking(1, 10, 9, 2),
		legacy,
	}}
	rebuilder := NewRebuilder(bookingRepo, newFakeLedgerRepo(), nopLogger{})

	ledger, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{9: 1, 10: 1}, ledger.Slots)
}

func TestRebuildIsIdempotent(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		activeBooking(1, 10, 14, 2),
		activeBooking(2, 20, 14, 4),
	}}
	rebuilder := NewRebuilder(bookingRepo, newFakeLedgerRepo(), nopLogger{})

	first, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	second, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestRebuildOverwritesStaleLedger(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	stale := domain.NewAvailabilityLedger(testDate)
	stale.Increment([]int{1, 2, 3})
	ledgerRepo.stored[testDate] = stale

	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		activeBooking(1, 10, 20, 2),
	}}
	rebuilder := NewRebuilder(bookingRepo, ledgerRepo, nopLogger{})

	ledger, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	// Полная перезапись: следов старого журнала не остаётся
	assert.Equal(t, map[int]int{20: 1, 21: 1}, ledger.Slots)
	assert.Equal(t, ledger, ledgerRepo.stored[testDate])
}

func TestRebuildEmptyDate(t *testing.T) {
	rebuilder := NewRebuilder(&fakeBookingRepo{}, newFakeLedgerRepo(), nopLogger{})

	ledger, err := rebuilder.Rebuild(context.Background(), testDate)
	require.NoError(t, err)

	assert.Empty(t, ledger.Slots)
	assert.Equal(t, 0, ledger.TotalBookings())
}

func TestRebuildInvalidDate(t *testing.T) {
	rebuilder := NewRebuilder(&fakeBookingRepo{}, newFakeLedgerRepo(), nopLogger{})

	_, err := rebuilder.Rebuild(context.Background(), types.DateString("not-a-date"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRebuildRepoError(t *testing.T) {
	bookingRepo := &fakeBookingRepo{err: errors.New("db down")}
	rebuilder := NewRebuilder(bookingRepo, newFakeLedgerRepo(), nopLogger{})

	_, err := rebuilder.Rebuild(context.Background(), testDate)
	assert.ErrorIs(t, err, ErrInternal)
}
