package get_date_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden   = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dates/{date}/bookings
// Query params: includeInactive (опционально)
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /dates/{date}/bookings - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)

	date, err := types.NewDateStringFromString(vars["date"])
	if err != nil {
		h.logger.Warn("GET /dates/{date}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), &models.GetBookingsByDateRequest{
		Date:            date,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /dates/{date}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /dates/{date}/bookings - Failed to get bookings: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dates/{date}/bookings - Bookings retrieved: date=%s, count=%d", date, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
