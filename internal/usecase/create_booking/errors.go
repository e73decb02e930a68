package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Проверки локальные, выполняются до любого обращения к хранилищу
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrNeedsRebuild возвращается изнутри транзакции, когда журнал занятости
	// на дату отсутствует. Координатор восстанавливается автоматически:
	// одна пересборка и один повтор транзакции; повторный ErrNeedsRebuild фатален
	ErrNeedsRebuild = errors.New("create_booking: availability ledger needs rebuild")

	// ErrSlotUnavailable возвращается, когда хотя бы один из запрошенных часов
	// уже занят до предела ёмкости. Сообщение содержит конкретный час.
	// Автоматически не повторяется: состояние слота реально изменилось
	ErrSlotUnavailable = errors.New("create_booking: slot is no longer available")

	// ErrCouponConsumed возвращается, когда купон прошёл рекомендательную
	// проверку, но проиграл гонку за лимит использований внутри транзакции
	ErrCouponConsumed = errors.New("create_booking: coupon usage limit reached")

	// ErrTxConflict возвращается, когда хранилище обнаружило конкурирующую
	// запись и прервало транзакцию. Отличается от бизнес-отказов:
	// вызывающая сторона может повторить запрос целиком
	ErrTxConflict = errors.New("create_booking: transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
