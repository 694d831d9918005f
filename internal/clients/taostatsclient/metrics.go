package taostatsclient

import (
	"context"
	"time"

	"github.com/taodash/subnet-indexer/internal/observability/metrics"
)

type taostatsClientWithMetrics struct {
	client TaostatsInterface
}

func NewTaostatsClientWithMetrics(client TaostatsInterface) *taostatsClientWithMetrics {
	return &taostatsClientWithMetrics{client: client}
}

func (c *taostatsClientWithMetrics) GetSubnet(ctx context.Context, netuid uint32) (*SubnetPayload, error) {
	return runTaostatsClientMethodWithMetrics("GetSubnet", func() (*SubnetPayload, error) {
		return c.client.GetSubnet(ctx, netuid)
	})
}

func (c *taostatsClientWithMetrics) GetPrice(ctx context.Context) (*Price, error) {
	return runTaostatsClientMethodWithMetrics("GetPrice", func() (*Price, error) {
		return c.client.GetPrice(ctx)
	})
}

func runTaostatsClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordTaostatsClientLatency(duration, method, err != nil)
	return result, err
}
