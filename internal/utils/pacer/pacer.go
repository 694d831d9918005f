package pacer

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer gates consecutive upstream requests.
type Pacer interface {
	// Wait blocks until the next request may start or ctx is done.
	Wait(ctx context.Context) error
}

// IntervalPacer lets one request through per interval. The first Wait
// returns immediately, every following one returns no sooner than interval
// after the previous one returned.
type IntervalPacer struct {
	mu      sync.Mutex
	limit   rate.Limit
	limiter *rate.Limiter
}

// NewIntervalPacer returns a pacer enforcing the given minimum spacing.
// A non positive interval disables pacing.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &IntervalPacer{
		limit:   limit,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (p *IntervalPacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	// A late wakeup would otherwise be credited to the next token and shorten
	// the following gap, so the next interval starts from the actual release.
	p.limiter = rate.NewLimiter(p.limit, 1)
	p.limiter.AllowN(time.Now(), 1)

	return nil
}
