package cancel_booking

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64, isAdmin bool) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		IsAdmin:            isAdmin,
		CancellationReason: r.CancellationReason,
	}
}
