package get_booked_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	ledgerRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/ledger"
	settingsRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/settings"
)

// UseCase use case чтения занятости на дату
//
// Журнал занятости - единственный источник истины для чтения:
// отсутствующий журнал пересобирается из бронирований на месте,
// чтение никогда не сканирует бронирования напрямую
type UseCase struct {
	ledgerRepo   LedgerRepository
	settingsRepo SettingsRepository
	rebuilder    Rebuilder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ledgerRepo LedgerRepository, settingsRepo SettingsRepository, rebuilder Rebuilder, logger Logger) *UseCase {
	return &UseCase{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		rebuilder:    rebuilder,
		logger:       logger,
	}
}

// Execute возвращает занятость слотов на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	ledger, err := uc.ledgerRepo.Get(ctx, req.Date)
	if err != nil {
		if !errors.Is(err, ledgerRepo.ErrLedgerNotFound) {
			uc.logger.Error("GetBookedSlots: failed to get ledger for date=%s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: failed to get ledger: %v", ErrInternal, err)
		}

		uc.logger.Info("GetBookedSlots: ledger missing for date=%s, rebuilding", req.Date)
		ledger, err = uc.rebuilder.Rebuild(ctx, req.Date)
		if err != nil {
			uc.logger.Error("GetBookedSlots: rebuild failed for date=%s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: ledger rebuild failed: %v", ErrInternal, err)
		}
	}

	capacity := domain.DefaultNumberOfRooms
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetBookedSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if err == nil {
		capacity = settings.Capacity()
	}

	return &Response{
		Date:             req.Date,
		Slots:            ledger.Slots,
		FullyBookedHours: ledger.FullyBookedHours(capacity),
		Capacity:         capacity,
	}, nil
}
