package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/venueservice"
)

// validateRequest выполняет локальные проверки запроса
// Вызывается до любого обращения к хранилищу и внешним сервисам
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid booking date: %v", ErrInvalidInput, err)
	}

	if req.DurationHours < domain.MinBookingHours {
		return fmt.Errorf("%w: minimum booking duration is %d hours", ErrInvalidInput, domain.MinBookingHours)
	}
	if !domain.IsValidHour(req.StartHour) {
		return fmt.Errorf("%w: start hour must be between 0 and %d", ErrInvalidInput, domain.HoursPerDay-1)
	}
	// Бронирование не может пересекать границу суток
	if req.StartHour+req.DurationHours > domain.HoursPerDay {
		return fmt.Errorf("%w: booking must end within the same day", ErrInvalidInput)
	}

	switch req.PaymentMethod {
	case domain.PaymentMethodOnline, domain.PaymentMethodVenue:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	switch req.BookedBy {
	case domain.BookedByCustomer, domain.BookedByAdmin:
	default:
		return fmt.Errorf("%w: unknown booking source %q", ErrInvalidInput, req.BookedBy)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	for _, item := range req.SelectedAdditionalItems {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: additional item quantity must be positive", ErrInvalidInput)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: additional item price must be non-negative", ErrInvalidInput)
		}
	}

	return nil
}

// computePricing рассчитывает стоимость бронирования без учёта купона
//
// Базовая цена покрывает стандартный пакет часов; часы сверх него
// оплачиваются по тарифу дополнительного часа. Скидка площадки
// применяется только к базовой цене и только при действующей акции
func computePricing(venue *venueservice.Venue, durationHours int, items []domain.SelectedAdditionalItem, now time.Time) pricing {
	p := pricing{
		basePrice: venue.BasePrice,
	}

	if venue.DealActive(now) {
		p.discountPercent = venue.DiscountPercent
		p.discountAmount = venue.BasePrice * venue.DiscountPercent / 100
	}

	if durationHours > domain.StandardPackageHours {
		extra := durationHours - domain.StandardPackageHours
		p.additionalHoursCost = float64(extra) * venue.AdditionalHourCost
	}

	for _, item := range items {
		p.additionalItemsTotal += item.Price * float64(item.Quantity)
	}

	p.subtotal = p.basePrice - p.discountAmount + p.additionalHoursCost + p.additionalItemsTotal
	p.finalTotal = p.subtotal

	return p
}
