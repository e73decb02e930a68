package get_availability

import (
	"strconv"

	getBookedSlots "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_booked_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date string `json:"date"`

	// Slots - занятость по часам, ключ - индекс часа "0".."23"
	Slots map[string]int `json:"slots"`

	FullyBookedHours []int `json:"fullyBookedHours"`
	Capacity         int   `json:"capacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *AvailabilityResponse {
	slots := make(map[string]int, len(resp.Slots))
	for hour, count := range resp.Slots {
		slots[strconv.Itoa(hour)] = count
	}

	return &AvailabilityResponse{
		Date:             resp.Date.String(),
		Slots:            slots,
		FullyBookedHours: resp.FullyBookedHours,
		Capacity:         resp.Capacity,
	}
}
