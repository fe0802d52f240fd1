package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether a caller identified by key may perform another
// request within the current window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
