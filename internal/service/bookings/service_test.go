package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	ledgerRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByDateRange(_ context.Context, from, _ types.DateString) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.BookingDate == from {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	return nil
}

type fakeLedgerRepo struct {
	slots map[types.DateString]map[int]int
}

func (f *fakeLedgerRepo) Get(_ context.Context, date types.DateString) (*domain.AvailabilityLedger, error) {
	slots, ok := f.slots[date]
	if !ok {
		return nil, ledgerRepo.ErrLedgerNotFound
	}
	return &domain.AvailabilityLedger{Date: date, Slots: slots}, nil
}

func (f *fakeLedgerRepo) UpdateSlots(_ context.Context, date types.DateString, slots map[int]int) error {
	f.slots[date] = slots
	return nil
}

// passthroughTxManager выполняет fn без транзакционной обвязки
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testDate = types.DateString("2026-03-15")

func confirmedBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		UserID:        userID,
		BookingDate:   testDate,
		StartHour:     14,
		EndHour:       16,
		DurationHours: 2,
		Status:        domain.StatusConfirmed,
	}
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo, *fakeLedgerRepo) {
	byID := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}
	bRepo := &fakeBookingRepo{bookings: byID}
	lRepo := &fakeLedgerRepo{slots: map[types.DateString]map[int]int{}}
	svc := NewService(bRepo, lRepo, passthroughTxManager{}, nopLogger{})
	return svc, bRepo, lRepo
}

func TestGetByIDOwnerAccess(t *testing.T) {
	svc, _, _ := newTestService(confirmedBooking(1, 7))

	resp, err := svc.GetByID(context.Background(), 1, 7, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, 8, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админ видит любое бронирование
	_, err = svc.GetByID(context.Background(), 1, 8, true)
	assert.NoError(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99, 7, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelReleasesSlots(t *testing.T) {
	svc, bRepo, lRepo := newTestService(confirmedBooking(1, 7))
	lRepo.slots[testDate] = map[int]int{14: 2, 15: 1}

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             7,
		CancellationReason: "план изменился",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, bRepo.bookings[1].Status)
	// Час 15 упал до нуля и удалён, час 14 остался занят другим бронированием
	assert.Equal(t, map[int]int{14: 1}, lRepo.slots[testDate])
}

func TestCancelAccessDenied(t *testing.T) {
	svc, bRepo, _ := newTestService(confirmedBooking(1, 7))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 8})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusConfirmed, bRepo.bookings[1].Status)
}

func TestCancelAdminOverride(t *testing.T) {
	svc, bRepo, lRepo := newTestService(confirmedBooking(1, 7))
	lRepo.slots[testDate] = map[int]int{14: 1, 15: 1}

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 999, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bRepo.bookings[1].Status)
	assert.Empty(t, lRepo.slots[testDate])
}

func TestCancelTwiceRejected(t *testing.T) {
	cancelled := confirmedBooking(1, 7)
	cancelled.Status = domain.StatusCancelled
	svc, _, _ := newTestService(cancelled)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancelWithMissingLedger(t *testing.T) {
	svc, bRepo, _ := newTestService(confirmedBooking(1, 7))

	// Журнала на дату нет - отмена всё равно проходит
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bRepo.bookings[1].Status)
}

func TestCancelLegacyBookingSkipsLedger(t *testing.T) {
	legacy := confirmedBooking(1, 7)
	legacy.StartHour = -1
	legacy.EndHour = -1
	legacy.DurationHours = 0

	svc, bRepo, lRepo := newTestService(legacy)
	lRepo.slots[testDate] = map[int]int{14: 1}

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, bRepo.bookings[1].Status)
	assert.Equal(t, map[int]int{14: 1}, lRepo.slots[testDate], "ledger untouched for bookings without hours")
}

func TestUpdateStatusRoutesCancellation(t *testing.T) {
	svc, bRepo, lRepo := newTestService(confirmedBooking(1, 7))
	lRepo.slots[testDate] = map[int]int{14: 1, 15: 1}

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "cancelled",
	})
	require.NoError(t, err)

	// Перевод в cancelled идёт через путь отмены: слоты освобождены
	assert.Equal(t, domain.StatusCancelled, bRepo.bookings[1].Status)
	assert.Empty(t, lRepo.slots[testDate])
	require.NotNil(t, bRepo.bookings[1].CancellationReason)
}

func TestUpdateStatusCompleted(t *testing.T) {
	svc, bRepo, lRepo := newTestService(confirmedBooking(1, 7))
	lRepo.slots[testDate] = map[int]int{14: 1, 15: 1}

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, bRepo.bookings[1].Status)
	// Завершённое бронирование продолжает занимать слоты
	assert.Equal(t, map[int]int{14: 1, 15: 1}, lRepo.slots[testDate])
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, _, _ := newTestService(confirmedBooking(1, 7))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 100,
		Status: "teleported",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetUserBookingsStatusFilter(t *testing.T) {
	first := confirmedBooking(1, 7)
	second := confirmedBooking(2, 7)
	second.Status = domain.StatusCancelled
	other := confirmedBooking(3, 8)

	svc, _, _ := newTestService(first, second, other)

	all, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	status := "cancelled"
	cancelled, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, cancelled.Bookings, 1)
	assert.Equal(t, int64(2), cancelled.Bookings[0].ID)

	bad := "teleported"
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDateExcludesCancelled(t *testing.T) {
	active := confirmedBooking(1, 7)
	cancelled := confirmedBooking(2, 8)
	cancelled.Status = domain.StatusCancelled

	svc, _, _ := newTestService(active, cancelled)

	resp, err := svc.GetByDate(context.Background(), &models.GetBookingsByDateRequest{Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	withInactive, err := svc.GetByDate(context.Background(), &models.GetBookingsByDateRequest{
		Date:            testDate,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, withInactive.Bookings, 2)
}
