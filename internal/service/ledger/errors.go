package ledger

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате пересборки
	ErrInvalidDate = errors.New("ledger.rebuilder: invalid date")

	// ErrInternal возвращается при внутренних ошибках пересборки
	ErrInternal = errors.New("ledger.rebuilder: internal error")
)
