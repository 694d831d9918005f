package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(*Poller)

// WithImmediateStart makes the poller run once right away instead of
// waiting a full interval for the first tick.
func WithImmediateStart() Option {
	return func(p *Poller) {
		p.immediate = true
	}
}

// Poller calls pollMethod on a fixed interval until stopped.
// Ticks that fire while a poll is still running are dropped.
type Poller struct {
	name       string
	interval   time.Duration
	immediate  bool
	quit       chan struct{}
	pollMethod func(ctx context.Context) error
}

func NewPoller(name string, interval time.Duration, pollMethod func(ctx context.Context) error, opts ...Option) *Poller {
	p := &Poller{
		name:       name,
		interval:   interval,
		quit:       make(chan struct{}),
		pollMethod: pollMethod,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start blocks until ctx is done or Stop is called.
// A failed poll is logged and doesn't stop the poller.
func (p *Poller) Start(ctx context.Context) {
	logger := log.Ctx(ctx).With().Str("poller", p.name).Logger()
	ctx = logger.WithContext(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", p.interval).Msg("Starting poller")
	if p.immediate {
		p.poll(ctx)
	}

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			logger.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			logger.Info().Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if err := p.pollMethod(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Error polling")
		return
	}
	log.Ctx(ctx).Debug().Msg("Poll method executed successfully")
}

func (p *Poller) Stop() {
	close(p.quit)
}
