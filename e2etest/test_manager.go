package e2etest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taodash/subnet-indexer/internal/api"
	"github.com/taodash/subnet-indexer/internal/clients/taostatsclient"
	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/internal/db"
	"github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/internal/observability/metrics"
	"github.com/taodash/subnet-indexer/internal/services"
	"github.com/taodash/subnet-indexer/testutil/container"
)

var (
	eventuallyWaitTimeOut = 40 * time.Second
	eventuallyPollTime    = 1 * time.Second
)

type TestManager struct {
	Config   *config.Config
	DbClient *db.Database
	Upstream *FakeTaostats
	API      *httptest.Server
	manager  *container.Manager
}

// StartManager starts mongo in docker, a fake taostats and the API on top of
// the real service stack.
func StartManager(t *testing.T, requestInterval time.Duration) *TestManager {
	manager, err := container.NewManager()
	require.NoError(t, err)

	dbCfg, err := manager.RunMongo("subnet-indexer-e2e-mongo", "e2e-subnets")
	require.NoError(t, err)

	upstream := NewFakeTaostats(t)

	cfg := DefaultSubnetIndexerConfig()
	cfg.Db = *dbCfg
	cfg.Taostats.URL = upstream.URL
	cfg.Sync.RequestInterval = requestInterval
	require.NoError(t, cfg.Validate())

	ctx := context.Background()

	// mongo needs a moment before it accepts connections
	require.Eventually(t, func() bool {
		return model.Setup(ctx, &cfg.Db) == nil
	}, eventuallyWaitTimeOut, eventuallyPollTime)

	dbClient, err := db.New(ctx, cfg.Db)
	require.NoError(t, err)

	taostats := taostatsclient.NewTaostatsClientWithMetrics(taostatsclient.NewClient(&cfg.Taostats))
	service := services.NewService(cfg, db.NewDbWithMetrics(dbClient), taostats)

	// metrics listener on an ephemeral port
	metrics.Init(cfg.Metrics.Addr())

	server := api.New(ctx, &cfg.Server, service)
	apiServer := httptest.NewServer(server.Handler())

	return &TestManager{
		Config:   cfg,
		DbClient: dbClient,
		Upstream: upstream,
		API:      apiServer,
		manager:  manager,
	}
}

func (tm *TestManager) Stop(t *testing.T) {
	tm.API.Close()
	require.NoError(t, tm.DbClient.Close(context.Background()))
	require.NoError(t, tm.manager.ClearResources())
}

func DefaultSubnetIndexerConfig() *config.Config {
	return &config.Config{
		Taostats: *config.DefaultTaostatsConfig(),
		Sync:     *config.DefaultSyncConfig(),
		Poller:   *config.DefaultPollerConfig(),
		Server:   *config.DefaultServerConfig(),
		// random port for metrics server
		Metrics: config.MetricsConfig{Host: "0.0.0.0", Port: 0},
	}
}

// Do sends a request to the API and decodes the JSON response into out.
func (tm *TestManager) Do(t *testing.T, method, path string, out any) int {
	req, err := http.NewRequestWithContext(t.Context(), method, tm.API.URL+path, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
