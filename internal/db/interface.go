package db

import (
	"context"

	"github.com/taodash/subnet-indexer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// UpsertSubnet inserts the document or replaces the stored one with the
	// same netuid wholesale. It returns the stored document.
	UpsertSubnet(ctx context.Context, subnet *model.SubnetDocument) (*model.SubnetDocument, error)
	// GetAllSubnets returns every stored subnet ordered by ascending netuid.
	GetAllSubnets(ctx context.Context) ([]*model.SubnetDocument, error)
	GetSubnetByNetuid(ctx context.Context, netuid uint32) (*model.SubnetDocument, error)
}
