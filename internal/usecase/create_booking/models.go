package create_booking

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	VenueID int64

	Date          types.DateString
	StartHour     int
	DurationHours int

	SelectedPackageVariants []domain.SelectedPackageVariant
	SelectedAdditionalItems []domain.SelectedAdditionalItem

	CouponCode *string

	PaymentMethod domain.PaymentMethod
	BookedBy      domain.BookedBy
	Notes         *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

// pricing промежуточный результат расчёта стоимости
// Все суммы до применения купона, кроме couponDiscount
type pricing struct {
	basePrice            float64
	discountPercent      float64
	discountAmount       float64
	additionalHoursCost  float64
	additionalItemsTotal float64
	subtotal             float64
	couponDiscount       float64
	finalTotal           float64
}
