package get_booked_slots

import "github.com/m04kA/SMC-VenueBookingService/pkg/types"

// Request модель запроса занятости на дату
type Request struct {
	Date types.DateString
}

// Response модель ответа с занятостью слотов на дату
type Response struct {
	Date types.DateString

	// Slots - занятость по часам: ключ - индекс часа 0..23,
	// значение - количество активных бронирований. Отсутствующие часы свободны
	Slots map[int]int

	// FullyBookedHours - часы, занятые до предела ёмкости (отсортированы)
	FullyBookedHours []int

	// Capacity - действующая глобальная ёмкость (numberOfRooms)
	Capacity int
}
