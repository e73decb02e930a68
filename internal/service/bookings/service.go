package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	ledgerRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
//
// Отмена меняет журнал занятости: статус и слоты обновляются
// в одной транзакции, иначе отменённое бронирование продолжит
// занимать часы до следующей пересборки
type Service struct {
	bookingRepo BookingRepository
	ledgerRepo  LedgerRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, админ - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByDate получает все бронирования на дату (админка)
// По умолчанию отменённые бронирования исключаются
func (s *Service) GetByDate(ctx context.Context, req *models.GetBookingsByDateRequest) (*models.BookingListResponse, error) {
	if err := req.Date.Validate(); err != nil {
		s.logger.Warn("GetByDate: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	s.logger.Info("GetByDate: fetching bookings for date=%s, includeInactive=%v", req.Date, req.IncludeInactive)

	bookings, err := s.bookingRepo.GetByDateRange(ctx, req.Date, req.Date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	if !req.IncludeInactive {
		active := bookings[:0]
		for _, b := range bookings {
			if !b.IsCancelled() {
				active = append(active, b)
			}
		}
		bookings = active
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), req.Date)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает занятые слоты
// Пользователь может отменить только своё бронирование, админ - любое
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID && !req.IsAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Статус и журнал занятости обновляются атомарно
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		return s.releaseSlots(ctx, booking)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: transaction failed for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования (админка)
// Перевод в cancelled идёт через полный путь отмены с освобождением слотов
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if newStatus == domain.StatusCancelled {
		return s.Cancel(ctx, bookingID, &models.CancelBookingRequest{
			UserID:             req.UserID,
			IsAdmin:            true,
			CancellationReason: "cancelled by admin",
		})
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return nil
}

// releaseSlots декрементирует журнал занятости на часы бронирования
// Отсутствующий журнал - не ошибка: следующая пересборка уже не учтёт
// отменённое бронирование
func (s *Service) releaseSlots(ctx context.Context, booking *domain.Booking) error {
	if !booking.HasValidHours() {
		s.logger.Warn("releaseSlots: booking id=%d has no valid hours, skipping ledger update", booking.ID)
		return nil
	}

	ledger, err := s.ledgerRepo.Get(ctx, booking.BookingDate)
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrLedgerNotFound) {
			s.logger.Warn("releaseSlots: ledger missing for date=%s, nothing to release", booking.BookingDate)
			return nil
		}
		return fmt.Errorf("get ledger: %w", err)
	}

	ledger.Decrement(booking.Hours())
	if err := s.ledgerRepo.UpdateSlots(ctx, booking.BookingDate, ledger.Slots); err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}

	return nil
}
