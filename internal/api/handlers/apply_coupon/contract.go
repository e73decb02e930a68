package apply_coupon

import (
	"context"

	applyCoupon "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
)

type ApplyCouponUseCase interface {
	Validate(ctx context.Context, req *applyCoupon.Request) (*applyCoupon.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
