package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentMethod represents how the customer intends to pay
type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodVenue  PaymentMethod = "at_venue"
)

// BookedBy identifies which console created the booking
type BookedBy string

const (
	BookedByCustomer BookedBy = "customer"
	BookedByAdmin    BookedBy = "admin"
)

// SelectedPackageVariant is a customer's choice for a customizable package item
type SelectedPackageVariant struct {
	InventoryID string `json:"inventoryId"`
	VariantID   string `json:"variantId"`
	VariantName string `json:"variantName"`
}

// SelectedAdditionalItem is a paid add-on outside the base package
type SelectedAdditionalItem struct {
	InventoryID string  `json:"inventoryId"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Booking represents a confirmed venue reservation. The hour range
// [StartHour, EndHour) must correspond to a ledger increment committed in
// the same transaction that created the booking.
type Booking struct {
	ID            int64
	BookingNumber string

	// Customer identity
	UserID        int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	// Venue reference with denormalized name for history
	VenueID   int64
	VenueName string

	// Date & time: hour-granularity slots on a single calendar date
	BookingDate   types.DateString
	StartHour     int
	EndHour       int // exclusive
	DurationHours int

	// Itemized selections
	SelectedPackageVariants []SelectedPackageVariant
	SelectedAdditionalItems []SelectedAdditionalItem

	// Pricing breakdown
	BasePrice            float64
	DiscountPercent      float64
	DiscountAmount       float64
	AdditionalItemsTotal float64
	AdditionalHoursCost  float64
	Subtotal             float64
	CouponCode           *string
	CouponDiscount       float64
	FinalTotal           float64

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus

	BookedBy BookedBy
	Status   BookingStatus
	Notes    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidHours reports whether the hour range is usable for occupancy
// accounting. Legacy records imported with missing hour fields fail this
// check and are skipped during ledger rebuilds.
func (b *Booking) HasValidHours() bool {
	return IsValidHour(b.StartHour) && b.DurationHours > 0 &&
		b.StartHour+b.DurationHours <= HoursPerDay
}

// Hours returns the hour indices occupied by the booking.
func (b *Booking) Hours() []int {
	return HoursOf(b.StartHour, b.DurationHours)
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlots returns true if the booking counts against slot capacity.
func (b *Booking) OccupiesSlots() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsValidStatus reports whether s is one of the known booking statuses.
// ActiveStatuses and InactiveStatuses together partition the known set.
func IsValidStatus(s BookingStatus) bool {
	for _, st := range ActiveStatuses {
		if s == st {
			return true
		}
	}
	for _, st := range InactiveStatuses {
		if s == st {
			return true
		}
	}
	return false
}
