package domain

import "time"

// DiscountType determines how a coupon's discount value is interpreted
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// CouponStatus represents the lifecycle state of a coupon
type CouponStatus string

const (
	CouponActive  CouponStatus = "active"
	CouponExpired CouponStatus = "expired"
)

// Coupon is a discount code with usage and eligibility constraints.
// UsedCount is mutated only inside the booking transaction.
type Coupon struct {
	ID            int64
	Code          string // stored uppercase
	DiscountType  DiscountType
	DiscountValue float64
	MinAmount     float64
	MaxUses       int // 0 = unlimited
	UsedCount     int
	ExpiryDate    *time.Time
	Status        CouponStatus

	// ApplicableVenueIDs restricts the coupon to specific venues.
	// Empty means valid for all venues.
	ApplicableVenueIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true if the coupon's expiry date has passed.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiryDate != nil && now.After(*c.ExpiryDate)
}

// UsageExhausted returns true if the usage cap has been reached.
func (c *Coupon) UsageExhausted() bool {
	return c.MaxUses > 0 && c.UsedCount >= c.MaxUses
}

// AppliesToVenue returns true if the coupon is valid for the given venue.
func (c *Coupon) AppliesToVenue(venueID int64) bool {
	if len(c.ApplicableVenueIDs) == 0 {
		return true
	}
	for _, id := range c.ApplicableVenueIDs {
		if id == venueID {
			return true
		}
	}
	return false
}

// DiscountFor computes the discount amount for a subtotal, clamped to
// [0, subtotal] so the final total can never go negative.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch c.DiscountType {
	case DiscountPercentage:
		discount = subtotal * c.DiscountValue / 100
	case DiscountFixed:
		discount = c.DiscountValue
	}
	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return discount
}
