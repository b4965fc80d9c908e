package ports

import "context"

// TxManager runs fn in one storage transaction. Repository calls made with
// the ctx passed to fn join it; a nested RunInTx joins the outer one.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
