package apply_coupon

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	couponRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/coupon"
)

// UseCase use case рекомендательной проверки купона перед бронированием
//
// Порядок проверок фиксирован, первая провалившаяся определяет ошибку:
//  1. код существует и купон активен
//  2. срок действия не истёк
//  3. лимит использований не исчерпан (maxUses = 0 - без лимита)
//  4. купон действует для целевой площадки (пустой список - для всех)
//  5. сумма заказа не меньше минимальной
type UseCase struct {
	couponRepo   CouponRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(couponRepo CouponRepository, logger Logger) *UseCase {
	return &UseCase{
		couponRepo:   couponRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Validate выполняет проверки купона и рассчитывает скидку
func (uc *UseCase) Validate(ctx context.Context, req *Request) (*Response, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	if req.Subtotal < 0 {
		return nil, fmt.Errorf("%w: subtotal must be non-negative", ErrInvalidInput)
	}

	uc.logger.Info("ApplyCoupon: code=%s, subtotal=%.2f, venue=%d", req.Code, req.Subtotal, req.VenueID)

	// 1. Код существует
	coupon, err := uc.couponRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("ApplyCoupon: code=%s not found", req.Code)
			return nil, ErrCouponNotFound
		}
		uc.logger.Error("ApplyCoupon: failed to get coupon code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	// ... и купон активен
	if coupon.Status != domain.CouponActive {
		uc.logger.Warn("ApplyCoupon: coupon id=%d is not active (status=%s)", coupon.ID, coupon.Status)
		return nil, ErrCouponNotFound
	}

	now := uc.timeProvider.Now()

	// 2. Срок действия
	if coupon.IsExpired(now) {
		uc.logger.Warn("ApplyCoupon: coupon id=%d expired at %v", coupon.ID, coupon.ExpiryDate)
		return nil, ErrCouponExpired
	}

	// 3. Лимит использований
	if coupon.UsageExhausted() {
		uc.logger.Warn("ApplyCoupon: coupon id=%d usage limit reached (%d/%d)",
			coupon.ID, coupon.UsedCount, coupon.MaxUses)
		return nil, ErrCouponUsageLimit
	}

	// 4. Применимость к площадке
	if !coupon.AppliesToVenue(req.VenueID) {
		uc.logger.Warn("ApplyCoupon: coupon id=%d not valid for venue=%d", coupon.ID, req.VenueID)
		return nil, ErrCouponVenueMismatch
	}

	// 5. Минимальная сумма заказа
	if req.Subtotal < coupon.MinAmount {
		uc.logger.Warn("ApplyCoupon: subtotal %.2f below coupon min amount %.2f",
			req.Subtotal, coupon.MinAmount)
		return nil, fmt.Errorf("%w: minimum order amount %.2f required", ErrCouponMinAmount, coupon.MinAmount)
	}

	discount := coupon.DiscountFor(req.Subtotal)

	uc.logger.Info("ApplyCoupon: coupon id=%d applied, discount=%.2f", coupon.ID, discount)

	return &Response{
		CouponID:      coupon.ID,
		Code:          coupon.Code,
		DiscountType:  string(coupon.DiscountType),
		DiscountValue: coupon.DiscountValue,
		Discount:      discount,
	}, nil
}
