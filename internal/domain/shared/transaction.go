package shared

import "context"

// TransactionManager runs a function inside a storage transaction. The
// context passed to fn carries the transaction; repositories resolve it
// so all work inside fn commits or rolls back together.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTransactionManager runs the function without any transaction. Used
// in tests and for stores that do not need atomicity.
type NopTransactionManager struct{}

// Do runs fn directly.
func (NopTransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
