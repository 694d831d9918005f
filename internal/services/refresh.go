package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/taodash/subnet-indexer/internal/clients/client"
	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/observability/metrics"
	"github.com/taodash/subnet-indexer/internal/types"
	"github.com/taodash/subnet-indexer/internal/utils/poller"
)

// RunRefresh walks the configured netuid range in ascending order, one request
// at a time, and upserts every subnet upstream returns. A failure for one
// netuid is recorded in the summary and the walk continues.
//
// If ctx is cancelled the walk stops and the partial summary is returned
// together with the context error. Records stored before that point remain.
func (s *Service) RunRefresh(ctx context.Context) (*types.RefreshSummary, error) {
	if !s.refreshMu.TryLock() {
		return nil, types.ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	log := log.Ctx(ctx)
	startTime := time.Now()

	if err := s.db.Ping(ctx); err != nil {
		metrics.RecordRefreshRun(time.Since(startTime), true)
		return nil, fmt.Errorf("%w: %w", types.ErrStorageUnavailable, err)
	}

	minNetuid, maxNetuid := s.cfg.Sync.MinNetuid, s.cfg.Sync.MaxNetuid
	log.Info().
		Uint32("min_netuid", minNetuid).
		Uint32("max_netuid", maxNetuid).
		Msg("Starting subnet refresh")

	summary := types.NewRefreshSummary()
	// counting in uint64 keeps a range ending at math.MaxUint32 finite
	for n := uint64(minNetuid); n <= uint64(maxNetuid); n++ {
		netuid := uint32(n)
		if err := s.waitForTurn(ctx); err != nil {
			metrics.RecordRefreshRun(time.Since(startTime), true)
			return summary, fmt.Errorf("refresh interrupted before netuid %d: %w", netuid, err)
		}

		kind, err := s.syncSubnet(ctx, netuid)
		if err != nil {
			// the request was aborted by us, not by upstream
			if ctxErr := ctx.Err(); ctxErr != nil {
				metrics.RecordRefreshRun(time.Since(startTime), true)
				return summary, fmt.Errorf("refresh interrupted at netuid %d: %w", netuid, ctxErr)
			}

			log.Warn().
				Err(err).
				Uint32("netuid", netuid).
				Str("kind", kind.String()).
				Msg("Failed to sync subnet")
			summary.RecordFailure(netuid, kind, err)
			metrics.RecordSubnetOutcome(kind.String())
			continue
		}

		summary.RecordSuccess()
		metrics.RecordSubnetOutcome("")
	}

	metrics.RecordRefreshRun(time.Since(startTime), false)
	log.Info().
		Int("ok", summary.OK).
		Int("failed", summary.Failed).
		Dur("duration", time.Since(startTime)).
		Msg("Subnet refresh complete")

	return summary, nil
}

// waitForTurn blocks until the pacer lets the next request through.
// The pacer is shared across runs, so a run started right after another
// one still keeps the spacing to its first request.
func (s *Service) waitForTurn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.pacer.Wait(ctx)
}

// syncSubnet fetches, normalizes and stores a single subnet.
// On failure it reports which stage failed.
func (s *Service) syncSubnet(ctx context.Context, netuid uint32) (types.FailureKind, error) {
	payload, err := s.taostats.GetSubnet(ctx, netuid)
	if err != nil {
		if errors.Is(err, taostatsclient.ErrNoData) || errors.Is(err, client.ErrInvalidResponse) {
			return types.FailureUpstreamMalformed, err
		}
		return types.FailureUpstreamUnavailable, err
	}

	subnet, err := normalizeSubnet(netuid, payload, s.now())
	if err != nil {
		return types.FailureUpstreamMalformed, err
	}

	if _, err := s.db.UpsertSubnet(ctx, subnet); err != nil {
		return types.FailureStorageWrite, err
	}

	return "", nil
}

// StartRefreshPoller schedules refresh runs when a polling interval is configured.
func (s *Service) StartRefreshPoller(ctx context.Context) {
	interval := s.cfg.Sync.RefreshPollingInterval
	if interval <= 0 {
		log.Ctx(ctx).Info().Msg("Scheduled subnet refresh is disabled")
		return
	}

	refreshPoller := poller.NewPoller(
		"refresh",
		interval,
		metrics.RecordPollerDuration("refresh", s.scheduledRefresh),
	)
	go refreshPoller.Start(ctx)
}

func (s *Service) scheduledRefresh(ctx context.Context) error {
	_, err := s.RunRefresh(ctx)
	if errors.Is(err, types.ErrRefreshInProgress) {
		// a manual run is still going, the next tick will catch up
		log.Ctx(ctx).Debug().Msg("Skipping scheduled refresh, another run is in progress")
		return nil
	}
	return err
}
