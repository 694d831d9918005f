package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/observability/metrics"
	"github.com/taodash/subnet-indexer/internal/utils/poller"
)

// StartPricePoller keeps the latest TAO price in memory.
func (s *Service) StartPricePoller(ctx context.Context) {
	pricePoller := poller.NewPoller(
		"price",
		s.cfg.Poller.PricePollingInterval,
		metrics.RecordPollerDuration("price", s.pollPrice),
		// the dashboard asks for a price as soon as it loads
		poller.WithImmediateStart(),
	)
	go pricePoller.Start(ctx)
}

func (s *Service) pollPrice(ctx context.Context) error {
	_, err := s.fetchAndCachePrice(ctx)
	return err
}

func (s *Service) fetchAndCachePrice(ctx context.Context) (*taostatsclient.Price, error) {
	price, err := s.taostats.GetPrice(ctx)
	if err != nil {
		return nil, err
	}

	s.priceMu.Lock()
	s.latestPrice = price
	s.priceMu.Unlock()

	log.Ctx(ctx).Debug().
		Str("price", price.Price.Value).
		Str("percent_change_24h", price.PercentChange24h.Value).
		Msg("Updated TAO price")

	return price, nil
}

// LatestPrice returns the cached price and whether one was cached yet.
func (s *Service) LatestPrice() (taostatsclient.Price, bool) {
	s.priceMu.RLock()
	defer s.priceMu.RUnlock()

	if s.latestPrice == nil {
		return taostatsclient.Price{}, false
	}
	return *s.latestPrice, true
}

// GetPrice serves the cached price, fetching it once if the poller
// hasn't filled the cache yet.
func (s *Service) GetPrice(ctx context.Context) (taostatsclient.Price, error) {
	if price, ok := s.LatestPrice(); ok {
		return price, nil
	}

	price, err := s.fetchAndCachePrice(ctx)
	if err != nil {
		return taostatsclient.Price{}, fmt.Errorf("price not available: %w", err)
	}
	return *price, nil
}
