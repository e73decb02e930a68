package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	ledgerRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/ledger"
	settingsRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/venueservice"
	applycoupon "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
)

// Максимум одной пересборки журнала на попытку бронирования
const maxRebuildRetries = 1

// UseCase координатор транзакции бронирования
//
// Протокол: проверка входных данных и расчёт стоимости выполняются
// вне транзакции, затем в одной SERIALIZABLE транзакции читается
// журнал занятости, проверяется ёмкость каждого запрошенного часа,
// журнал инкрементируется, купон списывается и создаётся запись
// бронирования. Либо фиксируется всё, либо ничего.
//
// Отсутствующий журнал - восстановимое состояние: координатор
// пересобирает его из бронирований и повторяет транзакцию ровно один раз
type UseCase struct {
	bookingRepo  BookingRepository
	ledgerRepo   LedgerRepository
	couponRepo   CouponRepository
	settingsRepo SettingsRepository
	venueClient  VenueServiceClient
	rebuilder    Rebuilder
	validator    CouponValidator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ledgerRepo LedgerRepository,
	couponRepo CouponRepository,
	settingsRepo SettingsRepository,
	venueClient VenueServiceClient,
	rebuilder Rebuilder,
	validator CouponValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ledgerRepo:   ledgerRepo,
		couponRepo:   couponRepo,
		settingsRepo: settingsRepo,
		venueClient:  venueClient,
		rebuilder:    rebuilder,
		validator:    validator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Локальная валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Бронирование на полностью прошедший день отклоняем до любого I/O
	if _, dayEnd, err := req.Date.DayBounds(); err != nil || dayEnd.Before(uc.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: booking date is in the past", ErrInvalidInput)
	}

	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, hours=%d-%d",
		req.UserID, req.VenueID, req.Date, req.StartHour, req.StartHour+req.DurationHours)

	// 2. Получаем данные площадки
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueservice.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue=%d not found", req.VenueID)
			return nil, fmt.Errorf("%w: venue %d", ErrVenueNotFound, req.VenueID)
		}
		uc.logger.Error("CreateBooking: failed to get venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	if !venue.IsPublished {
		uc.logger.Warn("CreateBooking: venue=%d is not published", req.VenueID)
		return nil, fmt.Errorf("%w: venue %d", ErrVenueNotFound, req.VenueID)
	}

	now := uc.timeProvider.Now()

	// 3. Рассчитываем стоимость
	price := computePricing(venue, req.DurationHours, req.SelectedAdditionalItems, now)

	// 4. Рекомендательная проверка купона (вне транзакции)
	// Авторитетная проверка лимита использований повторяется внутри транзакции
	var couponID *int64
	if req.CouponCode != nil && *req.CouponCode != "" {
		couponResp, err := uc.validator.Validate(ctx, &applycoupon.Request{
			Code:     *req.CouponCode,
			Subtotal: price.subtotal,
			VenueID:  req.VenueID,
		})
		if err != nil {
			return nil, err
		}
		couponID = &couponResp.CouponID
		price.couponDiscount = couponResp.Discount
		price.finalTotal = price.subtotal - couponResp.Discount
	}

	// 5. Транзакция бронирования с одним повтором при отсутствии журнала
	var created *domain.Booking
	for attempt := 0; ; attempt++ {
		created, err = uc.bookInTx(ctx, req, venue, price, couponID)
		if err == nil {
			break
		}

		if errors.Is(err, ErrNeedsRebuild) && attempt < maxRebuildRetries {
			uc.logger.Warn("CreateBooking: ledger missing for date=%s, rebuilding", req.Date)
			if _, rebuildErr := uc.rebuilder.Rebuild(ctx, req.Date); rebuildErr != nil {
				uc.logger.Error("CreateBooking: rebuild failed for date=%s: %v", req.Date, rebuildErr)
				return nil, fmt.Errorf("%w: ledger rebuild failed: %v", ErrInternal, rebuildErr)
			}
			continue
		}

		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict for date=%s: %v", req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrTxConflict, err)
		}

		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d number=%s created for date=%s",
		created.ID, created.BookingNumber, created.BookingDate)

	return &Response{Booking: created}, nil
}

// bookInTx выполняет один проход транзакции бронирования
func (uc *UseCase) bookInTx(ctx context.Context, req *Request, venue *venueservice.Venue, price pricing, couponID *int64) (*domain.Booking, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 5.1. Читаем глобальную ёмкость
		capacity := domain.DefaultNumberOfRooms
		settings, err := uc.settingsRepo.Get(ctx)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		if err == nil {
			capacity = settings.Capacity()
		}

		// 5.2. Читаем журнал занятости с блокировкой строки
		// Отсутствие журнала прерывает транзакцию: создавать пустой журнал
		// здесь нельзя, он может скрыть существующие бронирования
		ledger, err := uc.ledgerRepo.Get(ctx, req.Date)
		if err != nil {
			if errors.Is(err, ledgerRepo.ErrLedgerNotFound) {
				return ErrNeedsRebuild
			}
			return fmt.Errorf("%w: failed to get ledger: %v", ErrInternal, err)
		}

		// 5.3. Проверяем ёмкость каждого запрошенного часа
		hours := domain.HoursOf(req.StartHour, req.DurationHours)
		for _, h := range hours {
			if ledger.IsFull(h, capacity) {
				return fmt.Errorf("%w: %s", ErrSlotUnavailable, domain.HourLabel(h))
			}
		}

		// 5.4. Инкрементируем журнал
		ledger.Increment(hours)
		if err := uc.ledgerRepo.UpdateSlots(ctx, req.Date, ledger.Slots); err != nil {
			return fmt.Errorf("%w: failed to update ledger: %v", ErrInternal, err)
		}

		// 5.5. Списываем купон: повторная авторитетная проверка под блокировкой
		if couponID != nil {
			coupon, err := uc.couponRepo.GetByID(ctx, *couponID)
			if err != nil {
				return fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
			}
			if coupon.Status != domain.CouponActive || coupon.IsExpired(uc.timeProvider.Now()) {
				return applycoupon.ErrCouponExpired
			}
			if coupon.UsageExhausted() {
				return fmt.Errorf("%w: coupon %s", ErrCouponConsumed, coupon.Code)
			}
			if err := uc.couponRepo.IncrementUsage(ctx, *couponID); err != nil {
				return fmt.Errorf("%w: failed to increment coupon usage: %v", ErrInternal, err)
			}
		}

		// 5.6. Создаём запись бронирования
		now := uc.timeProvider.Now()
		booking := &domain.Booking{
			BookingNumber: fmt.Sprintf("BK%d", now.UnixMilli()),

			UserID:        req.UserID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,

			VenueID:   req.VenueID,
			VenueName: venue.Name,

			BookingDate:   req.Date,
			StartHour:     req.StartHour,
			EndHour:       req.StartHour + req.DurationHours,
			DurationHours: req.DurationHours,

			SelectedPackageVariants: req.SelectedPackageVariants,
			SelectedAdditionalItems: req.SelectedAdditionalItems,

			BasePrice:            price.basePrice,
			DiscountPercent:      price.discountPercent,
			DiscountAmount:       price.discountAmount,
			AdditionalItemsTotal: price.additionalItemsTotal,
			AdditionalHoursCost:  price.additionalHoursCost,
			Subtotal:             price.subtotal,
			CouponCode:           req.CouponCode,
			CouponDiscount:       price.couponDiscount,
			FinalTotal:           price.finalTotal,

			PaymentMethod: req.PaymentMethod,
			PaymentStatus: domain.PaymentPending,

			BookedBy: req.BookedBy,
			Status:   domain.StatusConfirmed,
			Notes:    req.Notes,
		}

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
