package booking

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

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"booking_number",
	"user_id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"venue_id",
	"venue_name",
	"booking_date",
	"start_hour",
	"end_hour",
	"duration_hours",
	"selected_package_variants",
	"selected_additional_items",
	"base_price",
	"discount_percent",
	"discount_amount",
	"additional_items_total",
	"additional_hours_cost",
	"subtotal",
	"coupon_code",
	"coupon_discount",
	"final_total",
	"payment_method",
	"payment_status",
	"booked_by",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Координатор бронирования ВСЕГДА вызывает Create внутри транзакции вместе
// с инкрементом журнала занятости - иначе возможен овербукинг.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	variantsJSON, err := json.Marshal(booking.SelectedPackageVariants)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal package variants: %v", ErrMarshalItems, err)
	}
	itemsJSON, err := json.Marshal(booking.SelectedAdditionalItems)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal additional items: %v", ErrMarshalItems, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_number",
			"user_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"venue_id",
			"venue_name",
			"booking_date",
			"start_hour",
			"end_hour",
			"duration_hours",
			"selected_package_variants",
			"selected_additional_items",
			"base_price",
			"discount_percent",
			"discount_amount",
			"additional_items_total",
			"additional_hours_cost",
			"subtotal",
			"coupon_code",
			"coupon_discount",
			"final_total",
			"payment_method",
			"payment_status",
			"booked_by",
			"status",
			"notes",
		).
		Values(
			booking.BookingNumber,
			booking.UserID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.VenueID,
			booking.VenueName,
			booking.BookingDate.String(),
			booking.StartHour,
			booking.EndHour,
			booking.DurationHours,
			variantsJSON,
			itemsJSON,
			booking.BasePrice,
			booking.DiscountPercent,
			booking.DiscountAmount,
			booking.AdditionalItemsTotal,
			booking.AdditionalHoursCost,
			booking.Subtotal,
			booking.CouponCode,
			booking.CouponDiscount,
			booking.FinalTotal,
			booking.PaymentMethod,
			booking.PaymentStatus,
			booking.BookedBy,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, start_hour DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDateRange получает все бронирования с датой в диапазоне [from, to]
// включительно, без фильтрации по статусу и площадке.
// Используется пересборщиком журнала занятости (глобальная ёмкость - все
// площадки) и админским списком бронирований; отменённые записи
// отфильтровывает вызывающая сторона.
func (r *Repository) GetByDateRange(ctx context.Context, from, to types.DateString) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": from.String()}).
		Where(squirrel.LtOrEq{"booking_date": to.String()}).
		OrderBy("booking_date ASC, start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
// Декремент журнала занятости выполняет сервис бронирований в той же
// транзакции - репозиторий меняет только статус.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку в domain.Booking
// Колонки часов nullable: легаси-записи без start_hour/duration_hours
// получают невалидные значения (-1/0), чтобы пересборщик мог их пропустить,
// а не получить мусорную арифметику.
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var (
		booking       domain.Booking
		bookingDate   time.Time
		startHour     sql.NullInt64
		endHour       sql.NullInt64
		durationHours sql.NullInt64
		variantsJSON  []byte
		itemsJSON     []byte
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.UserID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.VenueID,
		&booking.VenueName,
		&bookingDate,
		&startHour,
		&endHour,
		&durationHours,
		&variantsJSON,
		&itemsJSON,
		&booking.BasePrice,
		&booking.DiscountPercent,
		&booking.DiscountAmount,
		&booking.AdditionalItemsTotal,
		&booking.AdditionalHoursCost,
		&booking.Subtotal,
		&booking.CouponCode,
		&booking.CouponDiscount,
		&booking.FinalTotal,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.BookedBy,
		&booking.Status,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = types.NewDateString(bookingDate)
	booking.StartHour = -1
	booking.EndHour = -1
	booking.DurationHours = 0

	if startHour.Valid {
		booking.StartHour = int(startHour.Int64)
	}
	if endHour.Valid {
		booking.EndHour = int(endHour.Int64)
	}
	switch {
	case durationHours.Valid:
		booking.DurationHours = int(durationHours.Int64)
	case startHour.Valid && endHour.Valid:
		// Легаси-записи без duration_hours: выводим из диапазона
		booking.DurationHours = int(endHour.Int64 - startHour.Int64)
	}

	if len(variantsJSON) > 0 {
		if err := json.Unmarshal(variantsJSON, &booking.SelectedPackageVariants); err != nil {
			return nil, err
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &booking.SelectedAdditionalItems); err != nil {
			return nil, err
		}
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
