package ports

import "context"

// UnitOfWork coordinates a database transaction across the repositories of
// the order lifecycle. Each business operation obtains a fresh instance from
// a factory, giving proper isolation between concurrent requests.
//
// The catalog repository is deliberately outside the unit of work: partition
// creation issues DDL, which does not belong in business transactions.
type UnitOfWork interface {
	// Begin initiates a transaction. Calling Begin on an instance with an
	// active transaction is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes all changes made within the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes made within the current transaction.
	// Handlers call it deferred and ignore the error; after a successful
	// commit there is no transaction left to discard.
	Rollback(ctx context.Context) error

	// OrderRepository provides order persistence bound to the current
	// transaction if one is active.
	OrderRepository() OrderRepository

	// SequenceRepository provides counter allocation bound to the current
	// transaction if one is active. Allocating inside the placement
	// transaction rolls the counter increment back if the insert fails.
	SequenceRepository() SequenceRepository

	// CategoryRepository provides directory persistence bound to the
	// current transaction if one is active.
	CategoryRepository() CategoryRepository
}
