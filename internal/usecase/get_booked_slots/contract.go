package get_booked_slots

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// LedgerRepository - репозиторий журнала занятости
type LedgerRepository interface {
	Get(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error)
}

// SettingsRepository - репозиторий глобальных настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

// Rebuilder - пересборка журнала занятости из бронирований
type Rebuilder interface {
	Rebuild(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
