package ledger

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDateRange(ctx context.Context, from, to types.DateString) ([]*domain.Booking, error)
}

// LedgerRepository интерфейс репозитория журнала занятости
type LedgerRepository interface {
	Get(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error)
	Set(ctx context.Context, date types.DateString, ledger *domain.AvailabilityLedger) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
