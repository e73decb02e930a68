package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
)

const pqSerializationFailure = "40001"

var (
	// ErrBeginTx is returned when a transaction cannot be started
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx is returned when a transaction cannot be committed
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")

	// ErrSerialization is returned when the database aborts a transaction
	// due to a concurrent conflicting write. Aliases the txmanager sentinel
	// so callers match one error regardless of which manager is wired.
	ErrSerialization = txmanager.ErrSerialization
)

// TransactionManager is the metrics-free counterpart of pkg/txmanager,
// used when the service runs with metrics disabled. Behaviour is identical.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager over a bare *sql.DB.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a READ COMMITTED transaction.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
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
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", ErrSerialization, err)
		}
		return err
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

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
