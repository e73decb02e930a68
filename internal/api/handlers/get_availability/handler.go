package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	getBookedSlots "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_booked_slots"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := types.NewDateStringFromString(vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/{date} - Failed to get availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{date} - Availability retrieved: date=%s, booked_hours=%d",
		date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
