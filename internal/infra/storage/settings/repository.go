package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

// Ключ единственной строки настроек
const settingsKey = "capacity"

// Repository репозиторий глобальных настроек
// Ядро бронирования только читает настройки; запись выполняет
// внешняя админка
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает глобальную ёмкость (numberOfRooms)
// Если строка настроек отсутствует, возвращает ErrSettingsNotFound -
// вызывающая сторона подставляет дефолтную ёмкость
func (r *Repository) Get(ctx context.Context) (*domain.AppSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("number_of_rooms", "updated_at").
		From("app_settings").
		Where(squirrel.Eq{"key": settingsKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		result    domain.AppSettings
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(&result.NumberOfRooms, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	result.UpdatedAt = updatedAt.Time
	return &result, nil
}
