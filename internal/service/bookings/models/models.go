package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	IsAdmin            bool   `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"-"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetBookingsByDateRequest запрос на получение бронирований на дату (админка)
type GetBookingsByDateRequest struct {
	Date            types.DateString `json:"date"`
	IncludeInactive bool             `json:"includeInactive,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	UserID        int64  `json:"userId"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	VenueID   int64  `json:"venueId"`
	VenueName string `json:"venueName"`

	BookingDate   string `json:"bookingDate"` // "2026-03-15"
	StartHour     int    `json:"startHour"`
	EndHour       int    `json:"endHour"`
	DurationHours int    `json:"durationHours"`

	SelectedPackageVariants []domain.SelectedPackageVariant `json:"selectedPackageVariants,omitempty"`
	SelectedAdditionalItems []domain.SelectedAdditionalItem `json:"selectedAdditionalItems,omitempty"`

	BasePrice            float64 `json:"basePrice"`
	DiscountPercent      float64 `json:"discountPercent"`
	DiscountAmount       float64 `json:"discountAmount"`
	AdditionalItemsTotal float64 `json:"additionalItemsTotal"`
	AdditionalHoursCost  float64 `json:"additionalHoursCost"`
	Subtotal             float64 `json:"subtotal"`
	CouponCode           *string `json:"couponCode,omitempty"`
	CouponDiscount       float64 `json:"couponDiscount"`
	FinalTotal           float64 `json:"finalTotal"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`

	BookedBy string  `json:"bookedBy"`
	Status   string  `json:"status"`
	Notes    *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		UserID:        b.UserID,

		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,

		VenueID:   b.VenueID,
		VenueName: b.VenueName,

		BookingDate:   b.BookingDate.String(),
		StartHour:     b.StartHour,
		EndHour:       b.EndHour,
		DurationHours: b.DurationHours,

		SelectedPackageVariants: b.SelectedPackageVariants,
		SelectedAdditionalItems: b.SelectedAdditionalItems,

		BasePrice:            b.BasePrice,
		DiscountPercent:      b.DiscountPercent,
		DiscountAmount:       b.DiscountAmount,
		AdditionalItemsTotal: b.AdditionalItemsTotal,
		AdditionalHoursCost:  b.AdditionalHoursCost,
		Subtotal:             b.Subtotal,
		CouponCode:           b.CouponCode,
		CouponDiscount:       b.CouponDiscount,
		FinalTotal:           b.FinalTotal,

		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),

		BookedBy: string(b.BookedBy),
		Status:   string(b.Status),
		Notes:    b.Notes,

		CancellationReason: b.CancellationReason,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
