package dbmetrics

import "context"

type ctxKey struct{}

var txKey ctxKey

// ContextWithTx returns a context carrying an open transaction.
// Repositories resolve it via GetExecutor, so the same repository code
// works both inside and outside transactions.
func ContextWithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction bound to ctx, or fallback when the
// call is not running inside a managed transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries a managed transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
