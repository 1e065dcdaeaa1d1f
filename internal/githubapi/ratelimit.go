// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package githubapi

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a minimum interval between API calls. It replaces
// fixed sleeps so the pacing policy is swappable and tests can run
// without wall-clock delays.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a Pacer that admits one call per interval. A zero or
// negative interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call is admitted, or until ctx is done.
// The first call after construction is admitted immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
