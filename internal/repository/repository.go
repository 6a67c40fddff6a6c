package repository

import (
	"context"
	"errors"
	"time"
)

// ErrRecordNotFound is returned by lookups by id when no row matches.
var ErrRecordNotFound = errors.New("record not found")

// withTimeout bounds a query by the configured timeout unless the caller
// already set a deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
