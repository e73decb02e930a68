package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	VenueID int64 `json:"venueId"`

	BookingDate   string `json:"bookingDate"` // "2026-03-15"
	StartHour     int    `json:"startHour"`   // 0..23
	DurationHours int    `json:"durationHours"`

	SelectedPackageVariants []domain.SelectedPackageVariant `json:"selectedPackageVariants,omitempty"`
	SelectedAdditionalItems []domain.SelectedAdditionalItem `json:"selectedAdditionalItems,omitempty"`

	CouponCode *string `json:"couponCode,omitempty"`

	PaymentMethod string  `json:"paymentMethod"` // online | at_venue
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	UserID        int64  `json:"userId"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	VenueID   int64  `json:"venueId"`
	VenueName string `json:"venueName"`

	BookingDate   string `json:"bookingDate"`
	StartHour     int    `json:"startHour"`
	EndHour       int    `json:"endHour"`
	DurationHours int    `json:"durationHours"`

	SelectedPackageVariants []domain.SelectedPackageVariant `json:"selectedPackageVariants,omitempty"`
	SelectedAdditionalItems []domain.SelectedAdditionalItem `json:"selectedAdditionalItems,omitempty"`

	BasePrice            float64 `json:"basePrice"`
	DiscountAmount       float64 `json:"discountAmount"`
	AdditionalItemsTotal float64 `json:"additionalItemsTotal"`
	AdditionalHoursCost  float64 `json:"additionalHoursCost"`
	Subtotal             float64 `json:"subtotal"`
	CouponCode           *string `json:"couponCode,omitempty"`
	CouponDiscount       float64 `json:"couponDiscount"`
	FinalTotal           float64 `json:"finalTotal"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, isAdmin bool) (*createBooking.Request, error) {
	date, err := types.NewDateStringFromString(r.BookingDate)
	if err != nil {
		return nil, err
	}

	bookedBy := domain.BookedByCustomer
	if isAdmin {
		bookedBy = domain.BookedByAdmin
	}

	return &createBooking.Request{
		UserID:        userID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,

		VenueID: r.VenueID,

		Date:          date,
		StartHour:     r.StartHour,
		DurationHours: r.DurationHours,

		SelectedPackageVariants: r.SelectedPackageVariants,
		SelectedAdditionalItems: r.SelectedAdditionalItems,

		CouponCode: r.CouponCode,

		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		BookedBy:      bookedBy,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
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
		DiscountAmount:       b.DiscountAmount,
		AdditionalItemsTotal: b.AdditionalItemsTotal,
		AdditionalHoursCost:  b.AdditionalHoursCost,
		Subtotal:             b.Subtotal,
		CouponCode:           b.CouponCode,
		CouponDiscount:       b.CouponDiscount,
		FinalTotal:           b.FinalTotal,

		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),

		Status: string(b.Status),
		Notes:  b.Notes,

		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
