// Package ctxutil provides context helpers.
package ctxutil

import "context"

// Canceled returns ctx.Err(): nil while ctx is live, otherwise
// context.Canceled or context.DeadlineExceeded. Long-running entry points
// call it first so a canceled command does no work.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
