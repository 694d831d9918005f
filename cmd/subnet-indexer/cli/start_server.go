package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/taodash/subnet-indexer/internal/api"
	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/internal/observability/metrics"
	"github.com/taodash/subnet-indexer/internal/observability/tracing"
)

const shutdownTimeout = 30 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the subnet indexer API server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	service, closeDb, err := newService(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating service")
	}
	defer func() {
		if err := closeDb(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("error while closing db client")
		}
	}()

	metrics.Init(cfg.Metrics.Addr())

	service.StartPricePoller(ctx)
	service.StartRefreshPoller(ctx)

	server := api.New(ctx, &cfg.Server, service)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		if err := server.Start(); err != nil {
			return fmt.Errorf("api server stopped: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		log.Info().Msg("Shutting down API server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return p.Wait()
}
