package ports

import "context"

// TxRunner executes fn inside one logical transaction: every repository call
// made with the context passed to fn either commits together or is not
// observed at all. The rental service uses it to keep the pair of effects
// (rental record, stock count) consistent.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
