package cli

import (
	"context"
	"fmt"

	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/internal/db"
	dbmodel "github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/internal/services"
)

// newService wires the store and the upstream client behind their metrics
// decorators. The returned close func releases the db connection.
func newService(ctx context.Context, cfg *config.Config) (*services.Service, func(context.Context) error, error) {
	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return nil, nil, fmt.Errorf("error while setting up subnet db model: %w", err)
	}

	database, err := db.New(ctx, cfg.Db)
	if err != nil {
		return nil, nil, fmt.Errorf("error while creating db client: %w", err)
	}
	var dbClient db.DbInterface = db.NewDbWithMetrics(database)

	var taostats taostatsclient.TaostatsInterface = taostatsclient.NewClient(&cfg.Taostats)
	taostats = taostatsclient.NewTaostatsClientWithMetrics(taostats)

	return services.NewService(cfg, dbClient, taostats), database.Close, nil
}
