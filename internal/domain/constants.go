package domain

// Slot model constants
const (
	// HoursPerDay is the number of bookable one-hour slots per calendar date
	HoursPerDay = 24

	// MinBookingHours is the minimum contiguous booking duration
	MinBookingHours = 2

	// StandardPackageHours is the number of hours included in the base price;
	// hours beyond it are billed as additional hours
	StandardPackageHours = 4
)

// Capacity constants
const (
	// DefaultNumberOfRooms is used when the settings store has no capacity row
	DefaultNumberOfRooms = 1
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слоты
// Используется при пересчёте журнала занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слоты
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
