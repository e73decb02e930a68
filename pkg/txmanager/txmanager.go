package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
)

// pq error code for serialization failures of SERIALIZABLE transactions.
const pqSerializationFailure = "40001"

var (
	// ErrBeginTx is returned when a transaction cannot be started
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when a transaction cannot be committed
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization is returned when the database aborts a transaction
	// due to a concurrent conflicting write. Callers decide whether to retry.
	ErrSerialization = errors.New("txmanager: serialization conflict")
)

// TransactionManager runs functions inside database transactions over an
// instrumented dbmetrics.DB. The open transaction travels in the context,
// picked up by repositories through dbmetrics.GetExecutor.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a transaction manager.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a READ COMMITTED transaction.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
// Concurrent conflicting commits surface as ErrSerialization.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.ContextWithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return wrapSerialization(err)
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// wrapSerialization keeps business errors intact but tags store-level
// serialization aborts so callers can tell them apart.
func wrapSerialization(err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
