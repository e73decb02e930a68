package apply_coupon

import (
	applyCoupon "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
)

// ApplyCouponRequest HTTP request model
type ApplyCouponRequest struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
	VenueID  int64   `json:"venueId"`
}

// ApplyCouponResponse HTTP response model
//
// Valid=false сопровождается машинной причиной отказа:
// not_found | expired | usage_limit | venue_mismatch | min_amount
type ApplyCouponResponse struct {
	Valid         bool    `json:"valid"`
	Reason        string  `json:"reason,omitempty"`
	Code          string  `json:"code,omitempty"`
	DiscountType  string  `json:"discountType,omitempty"`
	DiscountValue float64 `json:"discountValue,omitempty"`
	Discount      float64 `json:"discount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyCouponRequest) ToUseCaseRequest() *applyCoupon.Request {
	return &applyCoupon.Request{
		Code:     r.Code,
		Subtotal: r.Subtotal,
		VenueID:  r.VenueID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyCoupon.Response) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		Valid:         true,
		Code:          resp.Code,
		DiscountType:  resp.DiscountType,
		DiscountValue: resp.DiscountValue,
		Discount:      resp.Discount,
	}
}

// RejectedResponse формирует ответ для невалидного купона
func RejectedResponse(reason string) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		Valid:  false,
		Reason: reason,
	}
}
