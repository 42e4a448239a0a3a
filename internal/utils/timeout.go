package utils

import (
	"context"
	"time"
)

// DefaultDBTimeout bounds each single-statement repository call.
const DefaultDBTimeout = 5 * time.Second

// WithDBTimeout derives a context for one database operation.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}
