package services

import (
	"context"
	"sync"
	"time"

	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/internal/db"
	"github.com/taodash/subnet-indexer/internal/utils/pacer"
)

type Service struct {
	cfg      *config.Config
	db       db.DbInterface
	taostats taostatsclient.TaostatsInterface
	pacer    pacer.Pacer
	now      func() time.Time

	// refreshMu is held for the whole duration of a refresh run
	refreshMu sync.Mutex

	priceMu     sync.RWMutex
	latestPrice *taostatsclient.Price
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	taostats taostatsclient.TaostatsInterface,
) *Service {
	return &Service{
		cfg:      cfg,
		db:       db,
		taostats: taostats,
		pacer:    pacer.NewIntervalPacer(cfg.Sync.RequestInterval),
		now:      time.Now,
	}
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
