package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Repository репозиторий журнала занятости
// Одна строка на календарную дату: availability_ledger(date PK, slots JSONB, last_updated)
// Карта slots хранит только часы с ненулевой занятостью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала занятости
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает журнал занятости на дату
// Внутри транзакции добавляет FOR UPDATE: строка журнала - единственный
// разделяемый ресурс протокола бронирования, и блокировка на чтении
// сериализует конкурирующие бронирования одной даты
func (r *Repository) Get(ctx context.Context, date types.DateString) (*domain.AvailabilityLedger, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("date", "slots", "last_updated").
		From("availability_ledger").
		Where(squirrel.Eq{"date": date.String()})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	// Колонка date имеет тип DATE - lib/pq отдаёт её как time.Time
	var (
		rawDate     time.Time
		slotsJSON   []byte
		lastUpdated sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rawDate, &slotsJSON, &lastUpdated)
	if err == sql.ErrNoRows {
		return nil, ErrLedgerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan ledger: %v", ErrScanRow, err)
	}

	ledger := domain.NewAvailabilityLedger(types.NewDateString(rawDate))
	ledger.LastUpdated = lastUpdated.Time

	if len(slotsJSON) > 0 {
		if err := json.Unmarshal(slotsJSON, &ledger.Slots); err != nil {
			return nil, fmt.Errorf("%w: Get - unmarshal slots: %v", ErrScanRow, err)
		}
	}

	return ledger, nil
}

// Set полностью перезаписывает журнал занятости на дату (upsert)
// Используется ТОЛЬКО пересборщиком: полная замена, не merge
func (r *Repository) Set(ctx context.Context, date types.DateString, ledger *domain.AvailabilityLedger) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(ledger.Slots)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal slots: %v", ErrMarshalSlots, err)
	}

	query, args, err := psqlbuilder.Insert("availability_ledger").
		Columns("date", "slots", "last_updated").
		Values(date.String(), slotsJSON, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (date) DO UPDATE SET slots = EXCLUDED.slots, last_updated = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateSlots записывает новую карту слотов существующего журнала
// Используется координатором бронирования внутри транзакции после
// проверки ёмкости; обновляет last_updated серверным временем
func (r *Repository) UpdateSlots(ctx context.Context, date types.DateString, slots map[int]int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - marshal slots: %v", ErrMarshalSlots, err)
	}

	query, args, err := psqlbuilder.Update("availability_ledger").
		Set("slots", slotsJSON).
		Set("last_updated", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": date.String()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLedgerNotFound
	}

	return nil
}
