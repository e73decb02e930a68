package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	applycoupon "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgVenueNotFound      = "площадка не найдена"
	msgSlotUnavailable    = "выбранное время уже занято"
	msgTxConflict         = "не удалось завершить бронирование из-за конкурирующего запроса, попробуйте ещё раз"
	msgCouponInvalid      = "купон недействителен"
	msgCouponConsumed     = "лимит использования купона исчерпан"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: user_id=%d, date=%s, error=%v",
				userID, req.BookingDate, err)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrTxConflict):
			h.logger.Warn("POST /bookings - Transaction conflict: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgTxConflict)

		case errors.Is(err, createBooking.ErrCouponConsumed):
			h.logger.Warn("POST /bookings - Coupon consumed: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgCouponConsumed)

		case errors.Is(err, applycoupon.ErrCouponNotFound),
			errors.Is(err, applycoupon.ErrCouponExpired),
			errors.Is(err, applycoupon.ErrCouponUsageLimit),
			errors.Is(err, applycoupon.ErrCouponVenueMismatch),
			errors.Is(err, applycoupon.ErrCouponMinAmount):
			h.logger.Warn("POST /bookings - Invalid coupon: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgCouponInvalid)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, number=%s, user_id=%d",
		result.Booking.ID, result.Booking.BookingNumber, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
