package ledger

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Rebuilder детерминированно восстанавливает журнал занятости на дату
// из записей бронирований - когда журнал отсутствует или потерян.
//
// Пересборка глобальная по построению: ёмкость общая на весь бизнес,
// поэтому агрегируются бронирования ВСЕХ площадок без фильтра.
type Rebuilder struct {
	bookingRepo BookingRepository
	ledgerRepo  LedgerRepository
	logger      Logger
}

// NewRebuilder создает новый экземпляр пересборщика
func NewRebuilder(bookingRepo BookingRepository, ledgerRepo LedgerRepository, logger Logger) *Rebuilder {
	return &Rebuilder{
		bookingRepo: bookingRepo,
		ledgerRepo:  ledgerRepo,
		logger:      logger,
	}
}

// Rebuild пересчитывает и полностью перезаписывает журнал занятости на дату.
// Идемпотентна: повторный вызов без новых бронирований даёт идентичную
// карту слотов.
func (r *Rebuilder) Rebuild(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	r.logger.Info("Rebuild: rebuilding global availability ledger for date=%s", date)

	// Все бронирования на дату, по всем площадкам
	bookings, err := r.bookingRepo.GetByDateRange(ctx, date, date)
	if err != nil {
		r.logger.Error("Rebuild: failed to fetch bookings for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
	}

	rebuilt := domain.NewAvailabilityLedger(date)
	skipped := 0

	for _, b := range bookings {
		// Отменённые бронирования слоты не занимают
		if !b.OccupiesSlots() {
			continue
		}

		// Легаси-записи без корректных часов пропускаем: пересборка -
		// реконструкция по принципу best effort, не место для падения
		if !b.HasValidHours() {
			skipped++
			r.logger.Warn("Rebuild: skipping booking id=%d with invalid hours (start=%d, duration=%d)",
				b.ID, b.StartHour, b.DurationHours)
			continue
		}

		rebuilt.Increment(b.Hours())
	}

	// Полная перезапись, не merge
	if err := r.ledgerRepo.Set(ctx, date, rebuilt); err != nil {
		r.logger.Error("Rebuild: failed to write ledger for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to write ledger: %v", ErrInternal, err)
	}

	r.logger.Info("Rebuild: date=%s rebuilt from %d bookings (%d skipped), total occupancy=%d",
		date, len(bookings), skipped, rebuilt.TotalBookings())

	return rebuilt, nil
}
