package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/venueservice"
	applycoupon "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// BookingRepository - репозиторий для работы с бронированиями
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// LedgerRepository - репозиторий журнала занятости
type LedgerRepository interface {
	Get(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error)
	UpdateSlots(ctx context.Context, date types.DateString, slots map[int]int) error
}

// CouponRepository - репозиторий купонов (чтение и инкремент внутри транзакции)
type CouponRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Coupon, error)
	IncrementUsage(ctx context.Context, id int64) error
}

// SettingsRepository - репозиторий глобальных настроек (ёмкость площадки)
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

// VenueServiceClient - клиент сервиса площадок
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*venueservice.Venue, error)
}

// Rebuilder - пересборка журнала занятости из бронирований
type Rebuilder interface {
	Rebuild(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error)
}

// CouponValidator - рекомендательная проверка купона до транзакции
type CouponValidator interface {
	Validate(ctx context.Context, req *applycoupon.Request) (*applycoupon.Response, error)
}

// TransactionManager - менеджер транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider - провайдер текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// RealTimeProvider - стандартная реализация TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
