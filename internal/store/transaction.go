package store

import "context"

// TxFn is a function that executes within a store transaction. The
// context it receives carries the transaction; store calls made with it
// participate in the transaction. Returning an error aborts the
// transaction and rolls back every write made inside it.
type TxFn func(ctx context.Context) error

// TxRunner executes a function inside an atomic multi-document write.
// A concurrent reader never observes a partially applied TxFn: either
// every write inside fn is visible or none is.
type TxRunner interface {
	InTransaction(ctx context.Context, fn TxFn) error
}
