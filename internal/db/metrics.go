package db

import (
	"context"
	"time"

	"github.com/taodash/subnet-indexer/internal/db/model"
	"github.com/taodash/subnet-indexer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.run("Ping", func() error {
		return d.db.Ping(ctx)
	})
}

func (d *DbWithMetrics) UpsertSubnet(ctx context.Context, subnet *model.SubnetDocument) (result *model.SubnetDocument, err error) {
	//nolint:errcheck
	d.run("UpsertSubnet", func() error {
		result, err = d.db.UpsertSubnet(ctx, subnet)
		return err
	})
	return
}

func (d *DbWithMetrics) GetAllSubnets(ctx context.Context) (result []*model.SubnetDocument, err error) {
	//nolint:errcheck
	d.run("GetAllSubnets", func() error {
		result, err = d.db.GetAllSubnets(ctx)
		return err
	})
	if err == nil {
		metrics.RecordStoredSubnets(len(result))
	}
	return
}

func (d *DbWithMetrics) GetSubnetByNetuid(ctx context.Context, netuid uint32) (result *model.SubnetDocument, err error) {
	//nolint:errcheck
	d.run("GetSubnetByNetuid", func() error {
		result, err = d.db.GetSubnetByNetuid(ctx, netuid)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
