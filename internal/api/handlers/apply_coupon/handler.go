package apply_coupon

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	applyCoupon "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"

	reasonNotFound      = "not_found"
	reasonExpired       = "expired"
	reasonUsageLimit    = "usage_limit"
	reasonVenueMismatch = "venue_mismatch"
	reasonMinAmount     = "min_amount"
)

type Handler struct {
	useCase ApplyCouponUseCase
	logger  Logger
}

func NewHandler(useCase ApplyCouponUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/coupons/validate
//
// Проверка рекомендательная: невалидный купон - это ответ 200 с valid=false,
// а не ошибка. Ошибкой считается только некорректный запрос или сбой сервиса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Validate(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, applyCoupon.ErrInvalidInput):
			h.logger.Warn("POST /coupons/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, applyCoupon.ErrCouponNotFound):
			handlers.RespondJSON(w, http.StatusOK, RejectedResponse(reasonNotFound))

		case errors.Is(err, applyCoupon.ErrCouponExpired):
			handlers.RespondJSON(w, http.StatusOK, RejectedResponse(reasonExpired))

		case errors.Is(err, applyCoupon.ErrCouponUsageLimit):
			handlers.RespondJSON(w, http.StatusOK, RejectedResponse(reasonUsageLimit))

		case errors.Is(err, applyCoupon.ErrCouponVenueMismatch):
			handlers.RespondJSON(w, http.StatusOK, RejectedResponse(reasonVenueMismatch))

		case errors.Is(err, applyCoupon.ErrCouponMinAmount):
			handlers.RespondJSON(w, http.StatusOK, RejectedResponse(reasonMinAmount))

		default:
			h.logger.Error("POST /coupons/validate - Failed to validate coupon: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons/validate - Coupon valid: code=%s, discount=%.2f", result.Code, result.Discount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
