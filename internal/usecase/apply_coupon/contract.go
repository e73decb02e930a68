package apply_coupon

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
