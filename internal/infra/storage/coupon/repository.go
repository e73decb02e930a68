package coupon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

var couponColumns = []string{
	"id",
	"code",
	"discount_type",
	"discount_value",
	"min_amount",
	"max_uses",
	"used_count",
	"expiry_date",
	"status",
	"applicable_venue_ids",
	"created_at",
	"updated_at",
}

// Repository репозиторий купонов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode ищет купон по коду без учета регистра
// Коды хранятся в верхнем регистре
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Eq{"code": strings.ToUpper(strings.TrimSpace(code))}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByCode")
}

// GetByID получает купон по ID
// Внутри транзакции добавляет FOR UPDATE: счётчик использований купона -
// разделяемый ресурс, и координатор перечитывает его под блокировкой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// IncrementUsage увеличивает счётчик использований купона на единицу
// Вызывается ТОЛЬКО внутри транзакции бронирования
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coupons").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCouponNotFound
	}

	return nil
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Coupon, error) {
	var (
		coupon    domain.Coupon
		venueIDs  pq.Int64Array
		expiry    sql.NullTime
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountType,
		&coupon.DiscountValue,
		&coupon.MinAmount,
		&coupon.MaxUses,
		&coupon.UsedCount,
		&expiry,
		&coupon.Status,
		&venueIDs,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan coupon: %v", ErrScanRow, op, err)
	}

	if expiry.Valid {
		coupon.ExpiryDate = &expiry.Time
	}
	coupon.ApplicableVenueIDs = []int64(venueIDs)
	coupon.CreatedAt = createdAt.Time
	coupon.UpdatedAt = updatedAt.Time

	return &coupon, nil
}
