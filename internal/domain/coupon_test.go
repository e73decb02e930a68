package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponDiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		subtotal float64
		expected float64
	}{
		{
			name:     "percentage discount",
			coupon:   Coupon{DiscountType: DiscountPercentage, DiscountValue: 10},
			subtotal: 1000,
			expected: 100,
		},
		{
			name:     "fixed discount",
			coupon:   Coupon{DiscountType: DiscountFixed, DiscountValue: 200},
			subtotal: 1000,
			expected: 200,
		},
		{
			name:     "fixed discount clamped to subtotal",
			coupon:   Coupon{DiscountType: DiscountFixed, DiscountValue: 200},
			subtotal: 150,
			expected: 150,
		},
		{
			name:     "hundred percent",
			coupon:   Coupon{DiscountType: DiscountPercentage, DiscountValue: 100},
			subtotal: 500,
			expected: 500,
		},
		{
			name:     "zero subtotal",
			coupon:   Coupon{DiscountType: DiscountFixed, DiscountValue: 50},
			subtotal: 0,
			expected: 0,
		},
		{
			name:     "negative discount value floored at zero",
			coupon:   Coupon{DiscountType: DiscountFixed, DiscountValue: -50},
			subtotal: 100,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.coupon.DiscountFor(tt.subtotal))
		})
	}
}

func TestCouponIsExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Coupon{}).IsExpired(now), "coupon without expiry never expires")
	assert.False(t, (&Coupon{ExpiryDate: &future}).IsExpired(now))
	assert.True(t, (&Coupon{ExpiryDate: &past}).IsExpired(now))
}

func TestCouponUsageExhausted(t *testing.T) {
	assert.False(t, (&Coupon{MaxUses: 0, UsedCount: 1000}).UsageExhausted(), "zero max uses means unlimited")
	assert.False(t, (&Coupon{MaxUses: 5, UsedCount: 4}).UsageExhausted())
	assert.True(t, (&Coupon{MaxUses: 5, UsedCount: 5}).UsageExhausted())
	assert.True(t, (&Coupon{MaxUses: 5, UsedCount: 6}).UsageExhausted())
}

func TestCouponAppliesToVenue(t *testing.T) {
	assert.True(t, (&Coupon{}).AppliesToVenue(42), "empty list applies to all venues")
	assert.True(t, (&Coupon{ApplicableVenueIDs: []int64{1, 42}}).AppliesToVenue(42))
	assert.False(t, (&Coupon{ApplicableVenueIDs: []int64{1, 2}}).AppliesToVenue(42))
}
