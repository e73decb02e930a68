package get_booked_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	ledgerRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/ledger"
	settingsRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeLedgerRepo struct {
	ledgers map[types.DateString]*domain.AvailabilityLedger
	err     error
}

func (f *fakeLedgerRepo) Get(_ context.Context, date types.DateString) (*domain.AvailabilityLedger, error) {
	if f.err != nil {
		return nil, f.err
	}
	ledger, ok := f.ledgers[date]
	if !ok {
		return nil, ledgerRepo.ErrLedgerNotFound
	}
	return ledger, nil
}

type fakeSettingsRepo struct {
	capacity int
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.AppSettings, error) {
	if f.capacity == 0 {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return &domain.AppSettings{NumberOfRooms: f.capacity}, nil
}

type fakeRebuilder struct {
	ledger *domain.AvailabilityLedger
	err    error
	calls  int
}

func (f *fakeRebuilder) Rebuild(_ context.Context, date types.DateString) (*domain.AvailabilityLedger, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.ledger != nil {
		return f.ledger, nil
	}
	return domain.NewAvailabilityLedger(date), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testDate = types.DateString("2026-03-15")

func TestExecuteReturnsLedger(t *testing.T) {
	ledgers := map[types.DateString]*domain.AvailabilityLedger{
		testDate: {Date: testDate, Slots: map[int]int{14: 2, 15: 1}},
	}
	rebuilder := &fakeRebuilder{}
	uc := NewUseCase(&fakeLedgerRepo{ledgers: ledgers}, &fakeSettingsRepo{capacity: 2}, rebuilder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, map[int]int{14: 2, 15: 1}, resp.Slots)
	assert.Equal(t, []int{14}, resp.FullyBookedHours)
	assert.Equal(t, 2, resp.Capacity)
	assert.Zero(t, rebuilder.calls, "existing ledger must not trigger a rebuild")
}

func TestExecuteRebuildsMissingLedger(t *testing.T) {
	rebuilder := &fakeRebuilder{
		ledger: &domain.AvailabilityLedger{Date: testDate, Slots: map[int]int{9: 1}},
	}
	uc := NewUseCase(&fakeLedgerRepo{}, &fakeSettingsRepo{capacity: 1}, rebuilder, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 1, rebuilder.calls)
	assert.Equal(t, map[int]int{9: 1}, resp.Slots)
	assert.Equal(t, []int{9}, resp.FullyBookedHours)
}

func TestExecuteDefaultCapacity(t *testing.T) {
	ledgers := map[types.DateString]*domain.AvailabilityLedger{
		testDate: {Date: testDate, Slots: map[int]int{14: 1}},
	}
	uc := NewUseCase(&fakeLedgerRepo{ledgers: ledgers}, &fakeSettingsRepo{}, &fakeRebuilder{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultNumberOfRooms, resp.Capacity)
	assert.Equal(t, []int{14}, resp.FullyBookedHours)
}

func TestExecuteInvalidDate(t *testing.T) {
	uc := NewUseCase(&fakeLedgerRepo{}, &fakeSettingsRepo{capacity: 1}, &fakeRebuilder{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "15-03-2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRebuildFailure(t *testing.T) {
	rebuilder := &fakeRebuilder{err: errors.New("db down")}
	uc := NewUseCase(&fakeLedgerRepo{}, &fakeSettingsRepo{capacity: 1}, rebuilder, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}
