package apply_coupon

import "errors"

// Ошибки пяти рекомендательных проверок купона
// Первая провалившаяся проверка определяет результат
var (
	// ErrCouponNotFound возвращается, когда код не найден или купон неактивен
	ErrCouponNotFound = errors.New("apply_coupon: coupon not found or inactive")

	// ErrCouponExpired возвращается, когда срок действия купона истёк
	ErrCouponExpired = errors.New("apply_coupon: coupon has expired")

	// ErrCouponUsageLimit возвращается, когда лимит использований исчерпан
	ErrCouponUsageLimit = errors.New("apply_coupon: coupon usage limit reached")

	// ErrCouponVenueMismatch возвращается, когда купон не действует для площадки
	ErrCouponVenueMismatch = errors.New("apply_coupon: coupon is not valid for this venue")

	// ErrCouponMinAmount возвращается, когда сумма заказа меньше минимальной
	ErrCouponMinAmount = errors.New("apply_coupon: order amount below coupon minimum")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_coupon: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_coupon: internal error")
)
