package ledger

import "errors"

var (
	// ErrLedgerNotFound возвращается, когда журнал занятости на дату отсутствует
	// Координатор бронирования трактует это как сигнал к пересборке
	ErrLedgerNotFound = errors.New("ledger.repository: availability ledger not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ledger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ledger.repository: failed to scan row")

	// ErrMarshalSlots возвращается при ошибке сериализации карты слотов
	ErrMarshalSlots = errors.New("ledger.repository: failed to marshal slots")
)
