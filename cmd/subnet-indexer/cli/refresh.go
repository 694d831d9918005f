package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/taodash/subnet-indexer/internal/config"
	"github.com/taodash/subnet-indexer/internal/observability/metrics"
	"github.com/taodash/subnet-indexer/internal/observability/tracing"
)

// RefreshCmd runs a single refresh and prints the summary.
// Usage: ./subnet-indexer refresh --config config.yml [--fail-on-error]
func RefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetches every configured subnet from taostats once and stores it",
		Args:  cobra.ExactArgs(0),
		RunE:  refresh,
	}

	cmd.Flags().Bool("fail-on-error", false, "Exit with an error if any subnet failed to sync")

	return cmd
}

func refresh(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	failOnError, err := cmd.Flags().GetBool("fail-on-error")
	if err != nil {
		return fmt.Errorf("failed to parse fail-on-error flag: %w", err)
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	metrics.Register()

	service, closeDb, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDb(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("error while closing db client")
		}
	}()

	summary, err := service.RunRefresh(ctx)
	if summary != nil {
		out, marshalErr := json.MarshalIndent(summary, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode summary: %w", marshalErr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if failOnError && summary.Failed > 0 {
		return fmt.Errorf("%d of %d subnets failed to sync", summary.Failed, summary.OK+summary.Failed)
	}
	return nil
}
